package gen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/pingcap/go-ycsb/pkg/generator"
)

// Distributions for picking which station produces the next reading.
const (
	DIST_UNIFORM = "uniform"
	DIST_ZIPFIAN = "zipfian"
)

// Config shapes one synthetic measurement file.
type Config struct {
	// Rows is the number of records to write.
	Rows int
	// Stations is the number of distinct station names to draw from.
	// Names beyond the built-in city list are synthesized.
	Stations int
	// Dist picks the station distribution; empty means uniform.
	Dist string
	// Seed makes the output reproducible.
	Seed int64
}

// cities seeds the station names with real ones; Stations counts past
// the list fall back to synthetic Station-N names.
var cities = []string{
	"Abha", "Abidjan", "Abéché", "Accra", "Addis Ababa", "Adelaide",
	"Aden", "Ahvaz", "Albuquerque", "Alexandra", "Algiers", "Alice Springs",
	"Almaty", "Amsterdam", "Anadyr", "Anchorage", "Andorra la Vella", "Ankara",
	"Antananarivo", "Antsiranana", "Arkhangelsk", "Ashgabat", "Asmara", "Assab",
	"Astana", "Athens", "Atlanta", "Auckland", "Austin", "Baghdad",
	"Baku", "Baltimore", "Bamako", "Bangkok", "Bangui", "Banjul",
	"Barcelona", "Bata", "Batumi", "Beijing", "Beirut", "Belgrade",
	"Belize City", "Benghazi", "Bergen", "Berlin", "Bilbao", "Birao",
	"Bishkek", "Bissau", "Blantyre", "Bloemfontein", "Boise", "Bordeaux",
	"Bosaso", "Boston", "Bouaké", "Bratislava", "Brazzaville", "Bridgetown",
	"Brisbane", "Brussels",
}

// Write emits cfg.Rows records of "name;temp" to w. Each station gets a
// base climate; readings are normally distributed around it and clamped
// to the representable range.
func Write(w io.Writer, cfg Config) error {
	r := rand.New(rand.NewSource(cfg.Seed))
	names := stationNames(cfg.Stations)

	bases := make([]float64, len(names))
	for i := range bases {
		bases[i] = r.Float64()*60 - 20
	}

	var pick func() int
	switch cfg.Dist {
	case DIST_ZIPFIAN:
		z := generator.NewScrambledZipfian(0, int64(len(names)-1), generator.ZipfianConstant)
		pick = func() int { return int(z.Next(r)) }
	case DIST_UNIFORM, "":
		pick = func() int { return r.Intn(len(names)) }
	default:
		return fmt.Errorf("unknown distribution %q", cfg.Dist)
	}

	bw := bufio.NewWriter(w)
	for n := 0; n < cfg.Rows; n++ {
		s := pick()
		temp := bases[s] + r.NormFloat64()*10
		if temp < -99.9 {
			temp = -99.9
		}
		if temp > 99.9 {
			temp = 99.9
		}
		fmt.Fprintf(bw, "%s;%.1f\n", names[s], temp)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("unable to flush measurements: %w", err)
	}
	return nil
}

// WriteFile creates path and writes the dataset into it.
func WriteFile(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create measurements file: %w", err)
	}
	if err := Write(f, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close measurements file: %w", err)
	}
	return nil
}

func stationNames(n int) []string {
	if n <= 0 {
		n = len(cities)
	}
	if n <= len(cities) {
		return cities[:n]
	}
	names := make([]string, 0, n)
	names = append(names, cities...)
	for i := len(cities); i < n; i++ {
		names = append(names, fmt.Sprintf("Station-%d", i))
	}
	return names
}
