package config

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
)

type Params struct {
	NoiseType string
	Classes   int
	Rate      float64
	Seed      uint64
	Lenient   bool

	NoiseFile string
	DataDir   string
	CachePath string
	MongoURL  string
}

func (p *Params) Write(w io.Writer, title string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendRows([]table.Row{
		{"LABELNOISE_TYPE", p.NoiseType},
		{"LABELNOISE_CLASSES", fmt.Sprintf("%d", p.Classes)},
		{"LABELNOISE_RATE", fmt.Sprintf("%0.04f", p.Rate)},
		{"LABELNOISE_SEED", fmt.Sprintf("%d", p.Seed)},
		{"LABELNOISE_LENIENT", fmt.Sprintf("%t", p.Lenient)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"LABELNOISE_NOISE_FILE", p.NoiseFile},
		{"LABELNOISE_DATA_DIR", p.DataDir},
		{"LABELNOISE_CACHE", p.CachePath},
	})
	t.Render()
}

func NewParamsFromDefaults() Params {
	return Params{
		NoiseType: NoiseType(),
		Classes:   Classes(),
		Rate:      Rate(),
		Seed:      Seed(),
		Lenient:   Lenient(),

		NoiseFile: NoiseFile(),
		DataDir:   DataDir(),
		CachePath: CachePath(),
		MongoURL:  MongoURL(),
	}
}

// LoadEnv loads every existing file, earlier files taking precedence.
func LoadEnv(filenames ...string) {
	for _, filename := range filenames {
		if s, err := os.Stat(filename); err == nil && !s.IsDir() {
			if err := godotenv.Load(filename); err != nil {
				log.Printf("failed to load %s: %v", filename, err)
			}
		}
	}
}

// LoadDefaultEnv loads the .env files for the current ENV, defaulting to development.
func LoadDefaultEnv() {
	if _, ok := os.LookupEnv("ENV"); !ok {
		os.Setenv("ENV", "development")
	}
	env := os.Getenv("ENV")
	LoadEnv(".env."+env+".local", ".env."+env, ".env.local", ".env")
}

// CheckClasses accepts 0, meaning the class count is taken from the labels,
// or any count of at least 2.
func CheckClasses(v int) error {
	if v != 0 && v < 2 {
		return fmt.Errorf("class count %d must be 0 or at least 2", v)
	}
	return nil
}

func CheckRate(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("rate %v outside [0, 1]", v)
	}
	return nil
}

func envInt(name string, def func() int, check func(v int) error) func() int {
	return func() int {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			if v, err := strconv.ParseInt(v, 10, 32); err != nil {
				log.Fatalf("failed to parse env.%s: %v", name, err)
			} else if err := check(int(v)); err != nil {
				log.Fatalf("invalid env.%s: %v", name, err)
			} else {
				value = int(v)
			}
		}
		return value
	}
}

func envUint64(name string, def func() uint64) func() uint64 {
	return func() uint64 {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			if v, err := strconv.ParseUint(v, 10, 64); err != nil {
				log.Fatalf("failed to parse env.%s: %v", name, err)
			} else {
				value = v
			}
		}
		return value
	}
}

func envFloat64(name string, def func() float64, check func(v float64) error) func() float64 {
	return func() float64 {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			if v, err := strconv.ParseFloat(v, 64); err != nil {
				log.Fatalf("failed to parse env.%s: %v", name, err)
			} else if err := check(v); err != nil {
				log.Fatalf("invalid env.%s: %v", name, err)
			} else {
				value = v
			}
		}
		return value
	}
}

func envBool(name string, def func() bool) func() bool {
	return func() bool {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			if v, err := strconv.ParseBool(v); err != nil {
				log.Fatalf("failed to parse env.%s: %v", name, err)
			} else {
				value = v
			}
		}
		return value
	}
}

func envString(name string, def func() string) func() string {
	return func() string {
		value := def()
		if v, ok := os.LookupEnv(name); ok {
			value = v
		}
		return value
	}
}

var (
	NoiseType = envString("LABELNOISE_TYPE", func() string { return "symmetric" })
	Classes   = envInt("LABELNOISE_CLASSES", func() int { return 10 }, CheckClasses)
	Rate      = envFloat64("LABELNOISE_RATE", func() float64 { return 0.2 }, CheckRate)
	Seed      = envUint64("LABELNOISE_SEED", func() uint64 { return 0 })
	Lenient   = envBool("LABELNOISE_LENIENT", func() bool { return false })
)

var (
	NoiseFile = envString("LABELNOISE_NOISE_FILE", func() string { return "" })
	DataDir   = envString("LABELNOISE_DATA_DIR", func() string { return "./data" })
	CachePath = envString("LABELNOISE_CACHE", func() string { return "" })
	MongoURL  = envString("MONGO_URL", func() string { return "" })
)
