package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"studytrack/internal/bootstrap"
	sessiondomain "studytrack/internal/modules/session/domain"
	sessiondto "studytrack/internal/modules/session/dto"
	"studytrack/internal/platform/config"
	"studytrack/internal/platform/logging"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	dataDir    string
	configFile string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "studytrack",
		Short:         "Plan study sessions and get reminded when they end",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", ".", "directory holding studytrack data")
	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default <data-dir>/studytrack.yaml)")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newSessionCmd(flags))
	root.AddCommand(newSettingsCmd(flags))
	root.AddCommand(newAnalyticsCmd(flags))
	root.AddCommand(newRemindCmd(flags))
	root.AddCommand(newExportCmd(flags))
	root.AddCommand(newResetCmd(flags))
	return root
}

// loadApp wires the application with logs going to w.
func loadApp(flags *globalFlags, w io.Writer) (*bootstrap.App, error) {
	cfg, err := config.Load(flags.dataDir, flags.configFile)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, w)
	return bootstrap.New(cfg, logger)
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func withApp(cmd *cobra.Command, flags *globalFlags, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := loadApp(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(cmd.Context(), app)
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.dataDir, flags.configFile)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
				return fmt.Errorf("create log dir: %w", err)
			}
			logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer func() { _ = logFile.Close() }()

			app, err := bootstrap.New(cfg, logging.New(cfg.Log.Level, cfg.Log.Format, logFile))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(cmd.Context(), app)
		},
	}
}

func newSessionCmd(flags *globalFlags) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Manage study sessions"}

	var title, subject, date, start string
	var duration int
	add := &cobra.Command{
		Use:   "add --title <t> --subject <s> --date YYYY-MM-DD --start HH:mm --duration <min>",
		Short: "Schedule a study session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				if date == "" {
					date = app.SessionCLI.Today()
				}
				out, err := app.SessionCLI.Add(ctx, title, subject, date, start, duration)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session added: %s %s %s-%s %q\n", out.ID, out.Date, out.StartTime, endTime(out), out.Title)
				return nil
			})
		},
	}
	add.Flags().StringVar(&title, "title", "", "session title")
	add.Flags().StringVar(&subject, "subject", "", "subject")
	add.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default today)")
	add.Flags().StringVar(&start, "start", "", "start time HH:mm")
	add.Flags().IntVar(&duration, "duration", 0, "duration in minutes")

	var editID string
	edit := &cobra.Command{
		Use:   "edit --id <id> [--title --subject --date --start --duration]",
		Short: "Change fields of a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(editID) == "" {
				return fmt.Errorf("--id is required")
			}
			input := sessiondto.UpdateInput{ID: editID}
			f := cmd.Flags()
			if f.Changed("title") {
				input.Title = &title
			}
			if f.Changed("subject") {
				input.Subject = &subject
			}
			if f.Changed("date") {
				input.Date = &date
			}
			if f.Changed("start") {
				input.StartTime = &start
			}
			if f.Changed("duration") {
				input.Duration = &duration
			}
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Edit(ctx, input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session updated: %s %s %s-%s %q\n", out.ID, out.Date, out.StartTime, endTime(out), out.Title)
				return nil
			})
		},
	}
	edit.Flags().StringVar(&editID, "id", "", "session id")
	edit.Flags().StringVar(&title, "title", "", "session title")
	edit.Flags().StringVar(&subject, "subject", "", "subject")
	edit.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD")
	edit.Flags().StringVar(&start, "start", "", "start time HH:mm")
	edit.Flags().IntVar(&duration, "duration", 0, "duration in minutes")

	var rmID string
	rm := &cobra.Command{
		Use:   "rm --id <id>",
		Short: "Remove a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(rmID) == "" {
				return fmt.Errorf("--id is required")
			}
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.Remove(ctx, rmID); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session removed: %s\n", rmID)
				return nil
			})
		},
	}
	rm.Flags().StringVar(&rmID, "id", "", "session id")

	var doneID string
	var undo bool
	done := &cobra.Command{
		Use:   "done --id <id> [--undo]",
		Short: "Mark a session complete",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(doneID) == "" {
				return fmt.Errorf("--id is required")
			}
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.MarkComplete(ctx, doneID, !undo); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %s completed=%t\n", doneID, !undo)
				return nil
			})
		},
	}
	done.Flags().StringVar(&doneID, "id", "", "session id")
	done.Flags().BoolVar(&undo, "undo", false, "mark incomplete instead")

	var listDate, listWeek string
	var listToday, listAll bool
	list := &cobra.Command{
		Use:   "list [--date D | --week START | --today | --all]",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				var sessions []sessiondto.SessionOutput
				var err error
				switch {
				case listAll:
					sessions, err = app.SessionCLI.ListAll(ctx)
				case listWeek != "":
					sessions, err = app.SessionCLI.ListWeek(ctx, listWeek)
				case listDate != "":
					sessions, err = app.SessionCLI.ListByDate(ctx, listDate)
				default:
					sessions, err = app.SessionCLI.ListToday(ctx)
				}
				if err != nil {
					return err
				}
				if len(sessions) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
					return nil
				}
				for _, s := range sessions {
					mark := " "
					if s.Completed {
						mark = "x"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\t%s %s-%s\t%s\t%s\n", mark, s.ID, s.Date, s.StartTime, endTime(s), s.Subject, s.Title)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&listDate, "date", "", "sessions on date YYYY-MM-DD")
	list.Flags().StringVar(&listWeek, "week", "", "seven days starting at YYYY-MM-DD")
	list.Flags().BoolVar(&listToday, "today", false, "sessions today (default)")
	list.Flags().BoolVar(&listAll, "all", false, "every stored session")
	list.MarkFlagsMutuallyExclusive("date", "week", "today", "all")

	session.AddCommand(add, edit, rm, done, list)
	return session
}

func newSettingsCmd(flags *globalFlags) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Show or change settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.SettingsCLI.Load(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reminders: %t\ndark-mode: %t\nmotivational-messages: %t\nquick-add: %t\n",
					s.RemindersEnabled, s.DarkModeEnabled, s.MotivationalMessagesEnabled, s.QuickAddEnabled)
				return nil
			})
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "set <key> <true|false>",
		Short: "Change one setting (reminders, dark-mode, motivational-messages, quick-add)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("value must be true or false, got %q", args[1])
			}
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				if _, err := app.SettingsCLI.Set(ctx, args[0], enabled); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %t\n", args[0], enabled)
				return nil
			})
		},
	})
	return settings
}

func newAnalyticsCmd(flags *globalFlags) *cobra.Command {
	analytics := &cobra.Command{Use: "analytics", Short: "Study time summaries"}

	var start string
	week := &cobra.Command{
		Use:   "week [--start YYYY-MM-DD]",
		Short: "Minutes per subject over a week (default: current week from Sunday)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.AnalyticsCLI.Weekly(ctx, start)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "week %s..%s\n", out.StartDate, out.EndDate)
				for _, t := range out.Totals {
					_, _ = fmt.Fprintf(w, "%s\t%dmin\n", t.Subject, t.TotalMinutes)
				}
				_, _ = fmt.Fprintf(w, "total\t%dmin\t%d/%d completed\n", out.TotalMinutes, out.Completed, out.Sessions)
				return nil
			})
		},
	}
	week.Flags().StringVar(&start, "start", "", "first day of the week YYYY-MM-DD")

	analytics.AddCommand(week)
	return analytics
}

func newRemindCmd(flags *globalFlags) *cobra.Command {
	remind := &cobra.Command{Use: "remind", Short: "Session end reminders"}
	remind.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Poll every minute and print sessions as they end (ctrl+c to stop)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintln(w, "watching for finished sessions")
				app.ReminderCLI.Run(ctx, func(s sessiondto.SessionOutput) {
					_, _ = fmt.Fprintf(w, "finished: %s %q (%s) %s-%s\n", s.ID, s.Title, s.Subject, s.StartTime, endTime(s))
				})
				_, _ = fmt.Fprintf(w, "reminders %s\n", app.ReminderCLI.Status())
				return nil
			})
		},
	})
	return remind
}

func newExportCmd(flags *globalFlags) *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Export stored data"}

	var format string
	state := &cobra.Command{
		Use:   "state [--format json|yaml]",
		Short: "Print the persisted record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				payload, err := app.ExportState(ctx, format)
				if err != nil {
					return err
				}
				_, _ = cmd.OutOrStdout().Write(payload)
				if !strings.HasSuffix(string(payload), "\n") {
					_, _ = fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			})
		},
	}
	state.Flags().StringVar(&format, "format", bootstrap.ExportJSON, "json|yaml")

	var dir string
	notes := &cobra.Command{
		Use:   "notes --dir <dir>",
		Short: "Write one markdown note per session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(dir) == "" {
				return fmt.Errorf("--dir is required")
			}
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.ExportNotes(ctx, dir)
				if err != nil {
					return err
				}
				for _, p := range out.Paths {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d notes to %s\n", len(out.Paths), out.Dir)
				return nil
			})
		},
	}
	notes.Flags().StringVar(&dir, "dir", "", "output directory")

	export.AddCommand(state, notes)
	return export
}

func newResetCmd(flags *globalFlags) *cobra.Command {
	var yes bool
	reset := &cobra.Command{
		Use:   "reset --yes",
		Short: "Delete all sessions and settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("reset deletes every session and setting; pass --yes to confirm")
			}
			return withApp(cmd, flags, func(ctx context.Context, app *bootstrap.App) error {
				app.Reset(ctx)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "state cleared")
				return nil
			})
		},
	}
	reset.Flags().BoolVar(&yes, "yes", false, "confirm")
	return reset
}

func endTime(s sessiondto.SessionOutput) string {
	end, err := sessiondomain.EndMinute(s.StartTime, s.Duration)
	if err != nil {
		return "?"
	}
	return fmt.Sprintf("%02d:%02d", end/60, end%60)
}
