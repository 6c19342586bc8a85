package purekv

import (
	"errors"
	"sync"

	pkv "github.com/gasparian/pure-kv-go/client"
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

type Config struct {
	Address string
	Timeout int
}

// KeysIterator walks over the keys of one remote bucket using a
// dedicated client connection
type KeysIterator struct {
	client     *pkv.Client
	bucketName string
}

func (it *KeysIterator) Next() (string, bool) {
	if it.client == nil {
		return "", false
	}
	key, valTmp, err := it.client.Next(it.bucketName)
	if valTmp == nil || err != nil {
		it.client.Close()
		return "", false
	}
	return key, true
}

// PureKvStore implements store.Store on top of the pure-kv rpc server
type PureKvStore struct {
	mx     sync.RWMutex
	config Config
	client *pkv.Client
}

func New(config Config) *PureKvStore {
	return &PureKvStore{
		config: config,
		client: pkv.New(config.Address, config.Timeout),
	}
}

// Start opens the client connection and prepares the buckets
func (p *PureKvStore) Start() error {
	err := p.client.Open()
	if err != nil {
		return err
	}
	err = p.client.Create(vecsBucketName)
	if err != nil {
		return err
	}
	return p.client.Create(runsBucketName)
}

func (p *PureKvStore) Close() {
	p.client.Close()
}

func (p *PureKvStore) AddVector(vec []float64) (string, error) {
	uid := guuid.NewString()
	err := p.client.Set(vecsBucketName, uid, vec)
	if err != nil {
		return "", err
	}
	return uid, nil
}

func (p *PureKvStore) GetVector(id string) ([]float64, error) {
	valTmp, ok := p.client.Get(vecsBucketName, id)
	if !ok {
		return nil, keyNotFoundErr
	}
	return valTmp.([]float64), nil
}

func (p *PureKvStore) GetVectorsIterator() (store.Iterator, error) {
	err := p.client.MakeIterator(vecsBucketName)
	if err != nil {
		return nil, err
	}
	itClient := pkv.New(p.config.Address, p.config.Timeout)
	err = itClient.Open()
	if err != nil {
		return nil, err
	}
	it := &KeysIterator{
		client:     itClient,
		bucketName: vecsBucketName,
	}
	return it, nil
}

func (p *PureKvStore) SetRunReport(runId string, report []byte) error {
	return p.client.Set(runsBucketName, runId, report)
}

func (p *PureKvStore) GetRunReport(runId string) ([]byte, error) {
	valTmp, ok := p.client.Get(runsBucketName, runId)
	if !ok {
		return nil, keyNotFoundErr
	}
	return valTmp.([]byte), nil
}

func (p *PureKvStore) Clear() error {
	p.client.DestroyAll()
	return nil
}
