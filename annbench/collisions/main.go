package main

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	guuid "github.com/google/uuid"
	"gonum.org/v1/hdf5"

	bench "github.com/gasparian/vector-math-go/annbench"
	"github.com/gasparian/vector-math-go/common"
	"github.com/gasparian/vector-math-go/lsh"
	"github.com/gasparian/vector-math-go/store"
	"github.com/gasparian/vector-math-go/store/kv"
	"github.com/gasparian/vector-math-go/store/purekv"
	"github.com/gasparian/vector-math-go/vector"
)

const (
	TRAIN_DIM     = 784
	SAMPLE_SIZE   = 10000
	SYNTH_DIMS    = 16
	SYNTH_VECS    = 1000
	W             = 4
	N_PAIRS       = 100
	RESAMPLE      = 2
	N_DRAWS       = 500
	STORE_TIMEOUT = 500
)

// loadTrainVectors reads the train split of an ann-benchmarks hdf5 file
func loadTrainVectors(path string) ([][]float64, error) {
	absPath, _ := filepath.Abs(path)
	f, err := hdf5.OpenFile(absPath, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	train := []float32{}
	err = bench.GetVectorsFromHDF5(f, "train", &train)
	if err != nil {
		return nil, err
	}
	trainSplitted := make([][]float64, 0, len(train)/TRAIN_DIM)
	for i := 0; i <= len(train)-TRAIN_DIM; i += TRAIN_DIM {
		if len(trainSplitted) == SAMPLE_SIZE {
			break
		}
		trainSplitted = append(trainSplitted, vector.ConvertTo64(train[i:i+TRAIN_DIM]))
	}
	return trainSplitted, nil
}

func synthVectors(rnd *rand.Rand) [][]float64 {
	vecs := make([][]float64, SYNTH_VECS)
	for i := range vecs {
		vecs[i] = bench.RandomVector(rnd, SYNTH_DIMS).Values()
	}
	return vecs
}

func main() {
	logger := common.GetNewLogger()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	var vecs [][]float64
	var err error
	if len(os.Args) > 1 {
		vecs, err = loadTrainVectors(os.Args[1])
		if err != nil {
			logger.Err.Panic(err)
		}
		logger.Info.Printf("Loaded %v train vectors from %v", len(vecs), os.Args[1])
	} else {
		vecs = synthVectors(rnd)
		logger.Info.Printf("No dataset given, generated %v synthetic vectors", len(vecs))
	}
	dims := len(vecs[0])

	// Keep the raw vectors in a store; the pure-kv backend is picked
	// when the server address is set in the environment
	var s store.Store
	if addr := os.Getenv("PURE_KV_ADDR"); addr != "" {
		pkvStore := purekv.New(purekv.Config{
			Address: addr,
			Timeout: STORE_TIMEOUT,
		})
		err = pkvStore.Start()
		if err != nil {
			logger.Err.Panic(err)
		}
		defer pkvStore.Close()
		s = pkvStore
		logger.Info.Println("Using the pure-kv store at ", addr)
	} else {
		s = kv.NewKVStore()
	}
	logger.Info.Println("Populating the store...")
	bar := pb.StartNew(len(vecs))
	for i := range vecs {
		bar.Increment()
		_, err := s.AddVector(vecs[i])
		if err != nil {
			logger.Err.Panic(err)
		}
	}
	bar.Finish()

	datasetStats := bench.NewDatasetStats(vecs)
	logger.Info.Println("Mean l2 norm: ", datasetStats.MeanL2Norm, "Mean of means: ", datasetStats.MeanOfMeans)

	// Empirical check of the lsh collision contract: pairs with a high
	// similarity coefficient must collide more often than random ones
	family, err := lsh.NewRandomSimHashFamily(rnd, dims, W)
	if err != nil {
		logger.Err.Panic(err)
	}
	closePairs := make([][2]vector.Vector, N_PAIRS)
	distantPairs := make([][2]vector.Vector, N_PAIRS)
	for i := 0; i < N_PAIRS; i++ {
		closePairs[i] = bench.SimilarPair(rnd, dims, RESAMPLE)
		distantPairs[i] = bench.RandomPair(rnd, dims)
	}

	logger.Info.Println("Measuring collision rates...")
	closeRate := bench.CollisionRate(family, closePairs, N_DRAWS, rnd)
	distantRate := bench.CollisionRate(family, distantPairs, N_DRAWS, rnd)
	logger.Info.Println("Close pairs: ", closeRate, "Distant pairs: ", distantRate)
	if closeRate <= distantRate {
		logger.Warn.Println("Collision rates do not follow the similarity ordering")
	}
	closeMeanL2 := bench.MeanPairL2(closePairs)
	distantMeanL2 := bench.MeanPairL2(distantPairs)
	logger.Info.Println("Mean pair l2, close: ", closeMeanL2, "distant: ", distantMeanL2)

	report := bench.RunReport{
		Dims:          dims,
		W:             W,
		Draws:         N_DRAWS,
		CloseRate:     closeRate,
		DistantRate:   distantRate,
		CloseMeanL2:   closeMeanL2,
		DistantMeanL2: distantMeanL2,
		MeanL2Norm:    datasetStats.MeanL2Norm,
		MeanOfMeans:   datasetStats.MeanOfMeans,
	}
	serialized, err := json.Marshal(report)
	if err != nil {
		logger.Err.Panic(err)
	}
	runId := guuid.NewString()
	err = s.SetRunReport(runId, serialized)
	if err != nil {
		logger.Err.Panic(err)
	}
	logger.Info.Println("Run report saved: ", runId)
}
