package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/grexie/labelnoise/pkg/cache"
	"github.com/grexie/labelnoise/pkg/dataset"
	"github.com/grexie/labelnoise/pkg/db"
	"github.com/grexie/labelnoise/pkg/labels"
	"github.com/grexie/labelnoise/pkg/noise"
	"github.com/spf13/cobra"
)

var (
	noisifyIn     string
	noisifyOut    string
	noisifyRecord bool
)

var noisifyCmd = &cobra.Command{
	Use:   "noisify",
	Short: "Corrupt a label vector",
	Long: `Reads one label per line from --in, corrupts it with the configured noise
type and writes the noisy labels to --out. With --type from_file the labels
come from --noise-file, aligned with the image folder in --data-dir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNoisify(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	noisifyCmd.Flags().StringVar(&noisifyIn, "in", "", "CSV file of true labels")
	noisifyCmd.Flags().StringVar(&noisifyOut, "out", "", "CSV file for the noisy labels (default stdout report only)")
	noisifyCmd.Flags().StringVar(&params.NoiseFile, "noise-file", params.NoiseFile, "JSON file of external noisy labels")
	noisifyCmd.Flags().StringVar(&params.DataDir, "data-dir", params.DataDir, "image folder for external noisy labels")
	noisifyCmd.Flags().StringVar(&params.CachePath, "cache", params.CachePath, "leveldb directory caching noisy labels")
	noisifyCmd.Flags().BoolVar(&noisifyRecord, "record", params.MongoURL != "", "record the run in mongo")
	rootCmd.AddCommand(noisifyCmd)
}

func runNoisify(ctx context.Context, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	t, err := noise.ParseNoiseType(params.NoiseType)
	if err != nil {
		return err
	}

	opts := noise.Options{
		Type:      t,
		Classes:   params.Classes,
		Rate:      params.Rate,
		Seed:      params.Seed,
		NoiseFile: params.NoiseFile,
		Lenient:   params.Lenient,
	}

	var truth []int
	source := noisifyIn
	if t == noise.NoiseTypeFromFile {
		folder, err := dataset.NewImageFolder(params.DataDir)
		if err != nil {
			return err
		}
		truth = folder.Labels()
		opts.Classes = len(folder.Classes)
		opts.Loader = &dataset.FileNoise{Folder: folder, Lenient: params.Lenient}
		source = params.NoiseFile
	} else if noisifyIn == "" {
		return fmt.Errorf("--in is required for %s noise", t)
	} else if truth, err = labels.ReadFile(noisifyIn); err != nil {
		return err
	} else if opts.Classes == 0 {
		opts.Classes = max(2, labels.NumClasses(truth))
		log.Printf("using %d classes from %s", opts.Classes, noisifyIn)
	}

	shown := params
	shown.Classes = opts.Classes
	shown.Write(w, "Noise Config")

	result, err := noisifyCached(truth, opts)
	if err != nil {
		return err
	}

	if result.Matrix != nil {
		if err := noise.WriteMatrix(w, "Transition Matrix", result.Matrix); err != nil {
			return err
		}
	}
	if metrics, err := noise.CalculateMetrics(truth, result.Labels, opts.Classes); err != nil {
		return err
	} else if err := metrics.Write(w); err != nil {
		return err
	}
	log.Printf("actual noise %.2f", result.RealizedRate)

	if noisifyOut != "" {
		if err := labels.WriteFile(noisifyOut, result.Labels); err != nil {
			return err
		}
		log.Printf("wrote %d noisy labels to %s", len(result.Labels), noisifyOut)
	}

	if noisifyRecord {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if mdb, err := db.ConnectMongo(ctx, params.MongoURL); err != nil {
			return err
		} else {
			defer mdb.Client().Disconnect(context.Background())
			if id, err := db.RecordRun(ctx, mdb, db.NewRun(opts, source, truth, result, time.Now())); err != nil {
				return err
			} else {
				log.Printf("recorded run %s", id.Hex())
			}
		}
	}

	return nil
}

func noisifyCached(truth []int, opts noise.Options) (*noise.Result, error) {
	if params.CachePath == "" || opts.Type == noise.NoiseTypeFromFile {
		return noise.Noisify(truth, opts)
	}

	c, err := cache.Open(params.CachePath)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	key := cache.NewKey(opts.Type, opts.Classes, opts.Rate, opts.Seed, truth)
	if result, ok, err := c.Get(key); err != nil {
		return nil, err
	} else if ok {
		log.Printf("using cached noisy labels from %s", params.CachePath)
		return result, nil
	}

	result, err := noise.Noisify(truth, opts)
	if err != nil {
		return nil, err
	}

	// A lenient run may return labels without noise; a strict run must not find them here.
	if result.RealizedRate == 0 && opts.Rate > 0 {
		return result, nil
	}
	if err := c.Put(key, result); err != nil {
		log.Printf("unable to cache noisy labels: %v", err)
	} else {
		log.Printf("cached noisy labels, %d %s entries in %s", c.Len(opts.Type), opts.Type, params.CachePath)
	}
	return result, nil
}
