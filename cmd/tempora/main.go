package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coolbeans/tempora/pkg/civil"
	"github.com/coolbeans/tempora/pkg/clock"
	"github.com/coolbeans/tempora/pkg/config"
)

var version = "0.1.0"

var cfg = config.Default()

func main() {
	rootCmd := &cobra.Command{
		Use:   "tempora",
		Short: "Civil calendar arithmetic",
		Long: `Tempora is a calculator for civil calendar arithmetic in the
proleptic Gregorian calendar.

It converts between calendar, ordinal, ISO week, and Julian day
representations, adds and subtracts durations with exact day rollover,
and converts to and from Unix timestamps at any UTC offset.`,
		Version: version,
	}

	var configPath string
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if cfg.AllowLocalOffset {
			clock.AllowLocalOffset()
		}
		return nil
	}

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(weekdayCmd())
	rootCmd.AddCommand(unixCmd())
	rootCmd.AddCommand(nowCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert [date]",
		Short: "Convert a date between representations",
		Long: `Convert a date between calendar, ordinal, ISO week, and Julian
day representations.

The date may be given as YYYY-MM-DD, YYYY-DDD (ordinal), or a bare
Julian day number prefixed with "jd:".

Example:
  tempora convert 2020-12-31 --to iso-week
  tempora convert jd:2451545 --to calendar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			form := cfg.Output
			if to != "" {
				form = config.OutputForm(to)
			}
			switch form {
			case config.OutputCalendar:
				fmt.Println(date)
			case config.OutputOrdinal:
				year, ordinal := date.ToOrdinalDate()
				fmt.Printf("%04d-%03d\n", year, ordinal)
			case config.OutputISOWeek:
				isoYear, week, weekday := date.ToISOWeekDate()
				fmt.Printf("%04d-W%02d-%d (%s)\n", isoYear, week, weekday.NumberFromMonday(), weekday)
			case config.OutputJulian:
				fmt.Printf("jd:%d\n", date.ToJulianDay())
			default:
				return fmt.Errorf("unknown output form %q", form)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target form: calendar, ordinal, iso-week, julian")
	return cmd
}

func addCmd() *cobra.Command {
	var days, hours, minutes, seconds int64
	var subtract bool
	cmd := &cobra.Command{
		Use:   "add [datetime]",
		Short: "Add a duration to a date or datetime",
		Long: `Add a duration to a date or datetime, rolling the date across
day boundaries exactly.

Example:
  tempora add 2020-12-31 --days 2
  tempora add "2019-11-25 15:30:00" --hours 27
  tempora add 2021-01-01 --days 1 --subtract`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			duration := civil.Days(days).
				SaturatingAdd(civil.Hours(hours)).
				SaturatingAdd(civil.Minutes(minutes)).
				SaturatingAdd(civil.Seconds(seconds))

			dt, err := parseDateTime(args[0])
			if err != nil {
				return err
			}
			var out civil.DateTime
			var ok bool
			if subtract {
				out, ok = dt.CheckedSub(duration)
			} else {
				out, ok = dt.CheckedAdd(duration)
			}
			if !ok {
				return fmt.Errorf("result is outside the supported range (%s to %s)",
					civil.MinDate, civil.MaxDate)
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().Int64Var(&days, "days", 0, "days to add")
	cmd.Flags().Int64Var(&hours, "hours", 0, "hours to add")
	cmd.Flags().Int64Var(&minutes, "minutes", 0, "minutes to add")
	cmd.Flags().Int64Var(&seconds, "seconds", 0, "seconds to add")
	cmd.Flags().BoolVar(&subtract, "subtract", false, "subtract the duration instead")
	return cmd
}

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [from] [to]",
		Short: "Show the span between two dates or datetimes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDateTime(args[0])
			if err != nil {
				return err
			}
			to, err := parseDateTime(args[1])
			if err != nil {
				return err
			}
			d := to.Sub(from)
			fmt.Printf("%s (%d days, %d seconds)\n", d, d.WholeDays(), d.WholeSeconds())
			return nil
		},
	}
}

func weekdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday [date]",
		Short: "Show the day of the week for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			fmt.Println(date.Weekday())
			return nil
		},
	}
}

func unixCmd() *cobra.Command {
	var offset string
	cmd := &cobra.Command{
		Use:   "unix [timestamp|datetime]",
		Short: "Convert to or from a Unix timestamp",
		Long: `Convert a Unix timestamp to a datetime, or a datetime to a Unix
timestamp.

A bare integer argument is treated as a timestamp in seconds since the
epoch; anything else is parsed as a datetime assumed to be at the given
offset.

Example:
  tempora unix 1546300800
  tempora unix 1546300800 --offset +05:30
  tempora unix "2019-01-01 00:00:00"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			off, err := config.ParseOffset(offsetOrDefault(offset))
			if err != nil {
				return err
			}
			if ts, err := strconv.ParseInt(args[0], 10, 64); err == nil {
				odt, err := civil.FromUnixTimestamp(ts)
				if err != nil {
					return err
				}
				fmt.Println(odt.ToOffset(off))
				return nil
			}
			dt, err := parseDateTime(args[0])
			if err != nil {
				return err
			}
			fmt.Println(dt.AssumeOffset(off).UnixTimestamp())
			return nil
		},
	}
	cmd.Flags().StringVar(&offset, "offset", "", "UTC offset, e.g. +05:30 (default from config)")
	return cmd
}

func nowCmd() *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the current datetime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				odt, err := clock.NowLocal()
				if err != nil {
					return fmt.Errorf("local offset unavailable (enable allow_local_offset in the config): %w", err)
				}
				fmt.Println(odt)
				return nil
			}
			fmt.Println(clock.NowUTC())
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "use the system's local UTC offset")
	return cmd
}

func offsetOrDefault(offset string) string {
	if offset != "" {
		return offset
	}
	return cfg.DefaultOffset
}

// parseDate accepts YYYY-MM-DD, ordinal YYYY-DDD, and "jd:N" forms, with an
// optional leading minus on the year.
func parseDate(s string) (civil.Date, error) {
	if jd, ok := strings.CutPrefix(s, "jd:"); ok {
		n, err := strconv.Atoi(jd)
		if err != nil {
			return civil.Date{}, fmt.Errorf("invalid julian day %q: %w", jd, err)
		}
		return civil.DateFromJulianDay(n)
	}

	rest := s
	sign := 1
	if strings.HasPrefix(rest, "-") {
		sign = -1
		rest = rest[1:]
	}
	parts := strings.Split(rest, "-")
	switch len(parts) {
	case 2:
		year, err1 := strconv.Atoi(parts[0])
		ordinal, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return civil.Date{}, fmt.Errorf("invalid ordinal date %q", s)
		}
		return civil.DateFromOrdinal(sign*year, ordinal)
	case 3:
		year, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		day, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return civil.Date{}, fmt.Errorf("invalid date %q", s)
		}
		return civil.NewDate(sign*year, civil.Month(month), day)
	default:
		return civil.Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD, YYYY-DDD, or jd:N", s)
	}
}

// parseDateTime accepts a date optionally followed by a space or 'T' and an
// HH:MM[:SS] time. A bare date means midnight.
func parseDateTime(s string) (civil.DateTime, error) {
	sep := strings.IndexAny(s, " T")
	if sep < 0 {
		date, err := parseDate(s)
		if err != nil {
			return civil.DateTime{}, err
		}
		return date.Midnight(), nil
	}

	date, err := parseDate(s[:sep])
	if err != nil {
		return civil.DateTime{}, err
	}
	parts := strings.Split(s[sep+1:], ":")
	if len(parts) < 2 || len(parts) > 3 {
		return civil.DateTime{}, fmt.Errorf("invalid time %q: want HH:MM or HH:MM:SS", s[sep+1:])
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return civil.DateTime{}, fmt.Errorf("invalid time component %q: %w", p, err)
		}
		nums[i] = n
	}
	return date.WithHMS(nums[0], nums[1], nums[2])
}
