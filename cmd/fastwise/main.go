package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"fastwise/internal/app"
	"fastwise/internal/config"
	"fastwise/internal/fasting"
	"fastwise/internal/model"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fastwise",
	Short: "Intermittent fasting tracker and coach",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir:         %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:          %s\n", cfg.LogDir)
		fmt.Printf("Database:         %s (%s)\n", cfg.Database.Type, cfg.Database.DataDir)
		fmt.Printf("Encryption:       %s\n", cfg.Encryption.Type)
		fmt.Printf("Default Protocol: %s\n", cfg.Profile.DefaultProtocol)
		return nil
	},
}

// crypt command
var cryptCmd = &cobra.Command{
	Use:   "crypt",
	Short: "Manage export encryption keys",
}

var cryptInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate an encryption key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if a.Encryptor.IsConfigured() {
			return fmt.Errorf("encryption keys already exist")
		}

		passphrase, err := readPassphrase("Passphrase for private key: ")
		if err != nil {
			return err
		}

		if err := a.Encryptor.Setup(passphrase); err != nil {
			return fmt.Errorf("setting up encryption: %w", err)
		}

		fmt.Println("Encryption keys generated.")
		return nil
	},
}

// start command
var startCmd = &cobra.Command{
	Use:   "start [PROTOCOL]",
	Short: "Start a fast",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		protocolID := ""
		if len(args) > 0 {
			protocolID = args[0]
		}

		fast, err := a.Service.StartFast(protocolID)
		if err != nil {
			return err
		}

		protocol, _ := fasting.ProtocolByID(fast.ProtocolID)
		fmt.Printf("Started %s fast at %s\n", protocol.Name, fast.StartTime.Format("15:04:05"))
		fmt.Printf("Planned end: %s\n", fast.PlannedEndTime.Format("2006-01-02 15:04:05"))
		return nil
	},
}

// pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the active fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service.PauseFast(); err != nil {
			return err
		}

		fmt.Println("Fast paused. The timer is frozen until you resume.")
		return nil
	},
}

// resume command
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service.ResumeFast(); err != nil {
			return err
		}

		fmt.Println("Fast resumed.")
		return nil
	},
}

// end command
var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		completed, _ := cmd.Flags().GetBool("completed")

		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		fast, stats, err := a.Service.EndFast(completed)
		if err != nil {
			return err
		}

		fmt.Printf("Fast ended after %s.\n", fasting.FormatHoursMinutes(fast.Duration()))
		fmt.Printf("Total fasts: %d  Streak: %d  Completion rate: %.0f%%\n",
			stats.TotalFasts, stats.CurrentStreak, stats.CompletionRate)
		return nil
	},
}

// status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "View the active fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")

		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if watch {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			watcher := app.NewWatcher(a.Service, os.Stdout)
			return watcher.Run(ctx)
		}

		return printStatus(a.Service)
	},
}

func printStatus(service *fasting.Service) error {
	active := service.ActiveFast()
	if active == nil {
		fmt.Println("No active fast.")
		return nil
	}

	protocol, _ := fasting.ProtocolByID(active.ProtocolID)
	stage, _ := fasting.StageByID(service.CurrentStage())

	state := "fasting"
	if active.IsPaused {
		state = "paused"
	}

	fmt.Printf("Protocol:   %s (%s)\n", protocol.Name, state)
	fmt.Printf("Elapsed:    %s\n", fasting.FormatClock(service.ElapsedTime()))
	fmt.Printf("Remaining:  %s\n", fasting.FormatClock(service.RemainingTime()))
	fmt.Printf("Progress:   %.1f%%\n", service.CompletionPercentage())
	fmt.Printf("Stage:      %d - %s\n", stage.ID, stage.Name)
	if active.Notes != "" {
		fmt.Printf("Notes:      %s\n", active.Notes)
	}
	return nil
}

// protocols command
var protocolsCmd = &cobra.Command{
	Use:   "protocols",
	Short: "List fasting protocols",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range fasting.Protocols() {
			marker := " "
			if p.Recommended {
				marker = "*"
			}
			fmt.Printf("%s %-8s %-22s fast %gh / eat %gh\n", marker, p.ID, p.Name, p.FastHours, p.EatHours)
		}
		fmt.Println("\n* recommended")
		return nil
	},
}

// stages command
var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List fasting stages",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range fasting.Stages() {
			if s.ID == fasting.StageRefeeding {
				fmt.Printf("%d. %s (after the fast)\n", s.ID, s.Name)
			} else {
				fmt.Printf("%d. %s (%gh+)\n", s.ID, s.Name, s.StartHour)
			}
			fmt.Printf("   %s\n", s.Description)
		}
		return nil
	},
}

// stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View fasting statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		stats := a.Service.Stats()
		fmt.Printf("Total fasts:         %d\n", stats.TotalFasts)
		fmt.Printf("Total fasting hours: %.1f\n", stats.TotalFastingHours)
		fmt.Printf("Longest fast:        %.1fh\n", stats.LongestFast)
		fmt.Printf("Current streak:      %d\n", stats.CurrentStreak)
		fmt.Printf("Completion rate:     %.0f%%\n", stats.CompletionRate)
		fmt.Printf("Experience level:    %s\n", stats.ExperienceLevel)
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past fasts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		history := a.Service.History()
		if len(history) == 0 {
			fmt.Println("No fasts recorded.")
			return nil
		}

		start := 0
		if limit > 0 && len(history) > limit {
			start = len(history) - limit
		}

		for _, f := range history[start:] {
			status := "abandoned"
			if f.Completed {
				status = "completed"
			}
			fmt.Printf("%s  %-8s  %-9s  %s\n",
				f.StartTime.Format("2006-01-02 15:04"),
				f.ProtocolID,
				status,
				fasting.FormatHoursMinutes(f.Duration()),
			)
		}
		return nil
	},
}

// coach command
var coachCmd = &cobra.Command{
	Use:   "coach [MESSAGE...]",
	Short: "Talk to the fasting coach",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if welcome, seeded, err := a.Service.EnsureWelcome(); err != nil {
			return err
		} else if seeded {
			fmt.Printf("coach> %s\n\n", welcome.Message)
		}

		if len(args) > 0 {
			reply, err := a.Service.Respond(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Printf("coach> %s\n", reply.Message)
			return nil
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("coach needs a message argument when stdin is not a terminal")
		}

		fmt.Println("Chatting with the coach. Empty line to quit.")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				break
			}
			reply, err := a.Service.Respond(line)
			if err != nil {
				return err
			}
			fmt.Printf("coach> %s\n", reply.Message)
		}
		return scanner.Err()
	},
}

// checkin command
var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record how you feel during the active fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		energy, _ := cmd.Flags().GetInt("energy")
		mood, _ := cmd.Flags().GetString("mood")
		symptoms, _ := cmd.Flags().GetStringSlice("symptoms")

		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service.RecordCheckIn(energy, model.Mood(mood), symptoms); err != nil {
			return err
		}

		fmt.Println("Check-in recorded.")
		return nil
	},
}

// note command
var noteCmd = &cobra.Command{
	Use:   "note TEXT",
	Short: "Attach a note to the active fast",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service.SetNotes(strings.Join(args, " ")); err != nil {
			return err
		}

		fmt.Println("Note saved.")
		return nil
	},
}

// log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Add a progress journal entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, _ := cmd.Flags().GetFloat64("weight")
		energy, _ := cmd.Flags().GetInt("energy")
		mood, _ := cmd.Flags().GetString("mood")
		sleep, _ := cmd.Flags().GetFloat64("sleep")
		notes, _ := cmd.Flags().GetString("notes")
		symptoms, _ := cmd.Flags().GetStringSlice("symptoms")

		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		entry := model.ProgressEntry{
			Weight:   weight,
			Energy:   energy,
			Mood:     model.Mood(mood),
			Sleep:    sleep,
			Notes:    notes,
			Symptoms: symptoms,
		}
		if err := a.Service.AddProgressEntry(entry); err != nil {
			return err
		}

		fmt.Println("Journal entry added.")
		return nil
	},
}

// journal command
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "View the progress journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		entries := a.Service.Journal()
		if len(entries) == 0 {
			fmt.Println("No journal entries.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s", e.Date.Format("2006-01-02"))
			if e.Weight > 0 {
				fmt.Printf("  %.1fkg", e.Weight)
			}
			if e.Energy > 0 {
				fmt.Printf("  energy %d/10", e.Energy)
			}
			if e.Mood != "" {
				fmt.Printf("  mood %s", e.Mood)
			}
			if e.Sleep > 0 {
				fmt.Printf("  sleep %.1fh", e.Sleep)
			}
			if e.Notes != "" {
				fmt.Printf("  %s", e.Notes)
			}
			fmt.Println()
		}
		return nil
	},
}

// profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update experience level and motivation style",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		style, _ := cmd.Flags().GetString("style")

		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service.UpdateProfile(level, style); err != nil {
			return err
		}

		fmt.Println("Profile updated.")
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data to an encrypted file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return fmt.Errorf("--out is required")
		}

		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if !a.Encryptor.IsConfigured() {
			return fmt.Errorf("encryption keys missing, run \"fastwise crypt init\" first")
		}

		f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()

		if err := a.Service.Export(f, a.Encryptor); err != nil {
			return fmt.Errorf("exporting: %w", err)
		}

		fmt.Printf("Exported to %s\n", out)
		return nil
	},
}

// restore command
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore all data from an encrypted export",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		if in == "" {
			return fmt.Errorf("--in is required")
		}

		a, err := app.NewApp()
		if err != nil {
			return err
		}
		defer a.Close()

		passphrase, err := readPassphrase("Passphrase: ")
		if err != nil {
			return err
		}

		dec, err := a.Encryptor.Unlock(passphrase)
		if err != nil {
			return fmt.Errorf("unlocking private key: %w", err)
		}

		f, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("opening export file: %w", err)
		}
		defer f.Close()

		if err := a.Service.Restore(f, dec); err != nil {
			return fmt.Errorf("restoring: %w", err)
		}

		fmt.Println("Restore complete.")
		return nil
	},
}

// readPassphrase prompts on stderr and reads without echo when stdin
// is a terminal, otherwise reads a single line.
func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		return string(data), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no passphrase provided")
	}
	return scanner.Text(), nil
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	cryptCmd.AddCommand(cryptInitCmd)

	endCmd.Flags().Bool("completed", false, "Mark the fast as completed")
	statusCmd.Flags().BoolP("watch", "w", false, "Keep rendering the status once per second")
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of fasts to show")

	checkinCmd.Flags().IntP("energy", "e", 0, "Energy level 1-10")
	checkinCmd.Flags().StringP("mood", "m", "", "Mood: great, good, neutral, poor, bad")
	checkinCmd.Flags().StringSliceP("symptoms", "s", nil, "Symptoms, comma separated")

	logCmd.Flags().Float64("weight", 0, "Weight in kg")
	logCmd.Flags().IntP("energy", "e", 0, "Energy level 1-10")
	logCmd.Flags().StringP("mood", "m", "", "Mood: great, good, neutral, poor, bad")
	logCmd.Flags().Float64("sleep", 0, "Hours of sleep")
	logCmd.Flags().String("notes", "", "Free-form notes")
	logCmd.Flags().StringSliceP("symptoms", "s", nil, "Symptoms, comma separated")

	profileSetCmd.Flags().String("level", "", "Experience level: beginner, intermediate, advanced")
	profileSetCmd.Flags().String("style", "", "Motivation style: scientific, emotional, practical")
	profileCmd.AddCommand(profileSetCmd)

	exportCmd.Flags().StringP("out", "o", "", "Output file")
	restoreCmd.Flags().StringP("in", "i", "", "Input file")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cryptCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(protocolsCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(restoreCmd)
}
