package kv

import (
	"errors"
	"sync"

	guuid "github.com/google/uuid"

	"github.com/gasparian/vector-math-go/store"
)

const (
	vecsBucketName = "vecs"
	runsBucketName = "runs"
)

var (
	keyNotFoundErr = errors.New("Key not found")
)

// KVStore is an in-memory implementation of store.Store
type KVStore struct {
	mx sync.RWMutex
	m  map[string]map[string]interface{}
}

func NewKVStore() *KVStore {
	return &KVStore{
		m: make(map[string]map[string]interface{}),
	}
}

// KeysIterator yields keys of a single bucket over a channel
type KeysIterator struct {
	keys chan string
}

func (it *KeysIterator) Next() (string, bool) {
	key, opened := <-it.keys
	if !opened {
		return "", false
	}
	return key, true
}

func (s *KVStore) set(bucketName, key string, val interface{}) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if _, ok := s.m[bucketName]; !ok {
		s.m[bucketName] = make(map[string]interface{})
	}
	s.m[bucketName][key] = val
}

func (s *KVStore) get(bucketName, key string) (interface{}, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	val, ok := s.m[bucketName][key]
	return val, ok
}

// AddVector stores the vector under a fresh uid and returns it
func (s *KVStore) AddVector(vec []float64) (string, error) {
	uid := guuid.NewString()
	s.set(vecsBucketName, uid, vec)
	return uid, nil
}

func (s *KVStore) GetVector(id string) ([]float64, error) {
	vecTmp, ok := s.get(vecsBucketName, id)
	if !ok {
		return nil, keyNotFoundErr
	}
	return vecTmp.([]float64), nil
}

func (s *KVStore) GetVectorsIterator() (store.Iterator, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	bucket := s.m[vecsBucketName]
	it := &KeysIterator{
		keys: make(chan string, len(bucket)),
	}
	for key := range bucket {
		it.keys <- key
	}
	close(it.keys)
	return it, nil
}

func (s *KVStore) SetRunReport(runId string, report []byte) error {
	s.set(runsBucketName, runId, report)
	return nil
}

func (s *KVStore) GetRunReport(runId string) ([]byte, error) {
	reportTmp, ok := s.get(runsBucketName, runId)
	if !ok {
		return nil, keyNotFoundErr
	}
	return reportTmp.([]byte), nil
}

func (s *KVStore) Clear() error {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.m = make(map[string]map[string]interface{})
	return nil
}
