package commands

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nikkifoustaws-gh/TodayApi/internal/app"
)

// Export handles the export subcommand
func Export(args []string) {
	// Parse flags for export subcommand
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	year := fs.Int("year", 0, "Year to export (default: current year)")
	format := fs.String("format", "ics", "Export format: ics, csv or json")
	out := fs.String("out", "", "Output file (default: stdout)")
	tz := fs.String("tz", "", "Timezone name (default: "+app.TimezoneEnvVar+" or "+app.DefaultTimezone+")")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: today-api export [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Writes one year of special days as ICS, CSV or JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  %s    Timezone used when -tz is not set\n", app.TimezoneEnvVar)
	}
	fs.Parse(args)

	zone := *tz
	if zone == "" {
		zone = os.Getenv(app.TimezoneEnvVar)
	}
	loc, err := app.LoadZone(zone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	exportYear := *year
	if exportYear == 0 {
		exportYear = time.Now().In(loc).Year()
	}
	if exportYear < 1 || exportYear > 9999 {
		fmt.Fprintf(os.Stderr, "Error: %s: %d\n", app.ErrInvalidYear, exportYear)
		os.Exit(1)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	cal := app.BuildYearCalendar(exportYear, loc, app.StaticCatalog{})

	switch *format {
	case "ics":
		app.WriteCalendarICS(w, cal)
	case "csv":
		if err := app.WriteCalendarCSV(w, cal); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			os.Exit(1)
		}
	case "json":
		if err := app.WriteCalendarJSON(w, cal); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: %s: %q (want ics, csv or json)\n", app.ErrInvalidFormat, *format)
		os.Exit(1)
	}
}
