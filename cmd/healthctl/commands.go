package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"healthai/internal/analytics"
	"healthai/internal/config"
	"healthai/internal/db"
	"healthai/internal/lookup"
	"healthai/internal/models"
	"healthai/internal/validation"
)

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "healthctl",
		Short:         "Offline health lookups and database maintenance",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(remedyCmd())
	rootCmd.AddCommand(conditionsCmd())
	rootCmd.AddCommand(diseasesCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(bmiCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(statsCmd())

	return rootCmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// queryArg joins positional args into one query and rejects empty input.
func queryArg(args []string) (string, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if valid, msg := validation.ValidateQuery(query); !valid {
		return "", errors.New(msg)
	}
	return query, nil
}

func remedyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remedy <query>",
		Short: "Look up a natural remedy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := queryArg(args)
			if err != nil {
				return err
			}
			remedy, _, matched := lookup.FindRemedyMatch(query)
			return printJSON(cmd, models.RemedyResponse{
				Query:   query,
				Matched: matched,
				Remedy:  remedy,
			})
		},
	}
}

func conditionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conditions <symptom>...",
		Short: "Analyze a set of symptoms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symptoms := validation.NormalizeSymptoms(args)
			if valid, msg := validation.ValidateSymptoms(symptoms); !valid {
				return errors.New(msg)
			}
			return printJSON(cmd, models.SymptomAnalysisResponse{
				Symptoms:   symptoms,
				Conditions: lookup.MatchConditions(symptoms),
			})
		},
	}
}

func diseasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diseases",
		Short: "List the disease reference catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			symptom, _ := cmd.Flags().GetString("symptom")
			if symptom = validation.NormalizeQuery(symptom); symptom != "" {
				return printJSON(cmd, lookup.DiseasesWithSymptom(symptom))
			}
			return printJSON(cmd, lookup.Diseases())
		},
	}
	cmd.Flags().String("symptom", "", "Only list diseases with this symptom")
	return cmd
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <text>",
		Short: "Get the assistant reply for a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := queryArg(args)
			if err != nil {
				return err
			}
			reply, topic, _ := lookup.GenerateChatReplyMatch(text)
			return printJSON(cmd, models.ChatReplyResponse{
				UserTurn:      models.NewChatTurn(models.RoleUser, text),
				AssistantTurn: models.NewChatTurn(models.RoleAssistant, reply),
				Topic:         topic,
			})
		},
	}
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <condition>",
		Short: "Generate a treatment plan",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			condition, err := queryArg(args)
			if err != nil {
				return err
			}
			items, _, matched := lookup.GenerateTreatmentPlanMatch(condition)
			return printJSON(cmd, models.TreatmentPlanResponse{
				Condition: condition,
				Matched:   matched,
				Items:     items,
				Summary:   lookup.PlanSummary(condition),
			})
		},
	}
}

func bmiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Calculate body-mass index",
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, _ := cmd.Flags().GetFloat64("weight")
			height, _ := cmd.Flags().GetFloat64("height")
			if !validation.ValidateMetricValue("weight", weight) {
				return fmt.Errorf("weight %.1f kg is out of range", weight)
			}
			if !validation.ValidateMetricValue("height", height) {
				return fmt.Errorf("height %.1f cm is out of range", height)
			}
			bmi := analytics.BMI(weight, height)
			return printJSON(cmd, models.BMIResponse{
				BMI:      bmi,
				Category: analytics.BMICategory(bmi),
			})
		},
	}
	cmd.Flags().Float64("weight", 0, "Weight in kilograms")
	cmd.Flags().Float64("height", 0, "Height in centimetres")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func databaseURL() (string, error) {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		return "", errors.New("DATABASE_URL is not set")
	}
	return cfg.DatabaseURL, nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			database, err := db.New(cmd.Context(), url)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := database.RunMigrations(url); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations completed successfully")
			return nil
		},
	})

	return cmd
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show persisted lookup statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			database, err := db.New(cmd.Context(), url)
			if err != nil {
				return err
			}
			defer database.Close()

			if reset, _ := cmd.Flags().GetBool("reset"); reset {
				if err := database.ResetLookupStats(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Lookup stats cleared")
				return nil
			}

			stats, err := database.GetAllLookupStats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, stats)
		},
	}
	cmd.Flags().Bool("reset", false, "Delete all persisted lookup stats")
	return cmd
}
