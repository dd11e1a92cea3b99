package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jobsieve/jobsieve/internal/logger"
	"github.com/jobsieve/jobsieve/internal/match"
	"github.com/jobsieve/jobsieve/internal/profile"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var prompt = promptui.Select{
	Label: "Evaluate work experience as well?",
	Items: []string{PromptYes, PromptNo},
}

// ReportEnvelope wraps an evaluation report with the inputs that produced it
// for persisting to a file.
type ReportEnvelope struct {
	ID          string                    `json:"id"`
	User        string                    `json:"user,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	Requirement *profile.JobRequirement   `json:"requirement"`
	Profile     *profile.CandidateProfile `json:"profile"`
	Report      *match.Report             `json:"report"`
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a candidate profile against a job requirement",
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringP("requirement", "r", "", "path to the job requirement json file")
	evaluateCmd.Flags().StringP("profile", "p", "", "path to the candidate profile json file")
	evaluateCmd.Flags().Bool("experience", false, "evaluate work experience as well")
	evaluateCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation before evaluating experience")
	evaluateCmd.Flags().StringP("out", "o", "", "write the full report to the given file. Default is unset.")
	evaluateCmd.Flags().String("user", "anonymous", "user name recorded in the written report")

	evaluateCmd.MarkFlagRequired("requirement")
	evaluateCmd.MarkFlagRequired("profile")

	viper.BindPFlag("user", evaluateCmd.Flags().Lookup("user"))
}

// evaluate is the main command for the cli.
func evaluate(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the jobsieve", zap.String("version", version))

	if config != nil {
		// do not bother error since there is a valid parseable config
		pretty, _ := json.MarshalIndent(config, "", "  ")
		logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))
	}

	requirement, err := profile.LoadRequirement(cmd.Flag("requirement").Value.String())
	if err != nil {
		logger.Fatal("loading the job requirement", zap.Error(err))
	}

	candidate, err := profile.LoadProfile(cmd.Flag("profile").Value.String())
	if err != nil {
		logger.Fatal("loading the candidate profile", zap.Error(err))
	}

	logger.Info("loaded inputs",
		zap.Int("candidate skills", len(candidate.Skills)),
		zap.Strings("required skills", match.RequiredSkills(requirement.SkillsExpression)),
	)

	engine := match.New(logger, engineOptions(config)...)

	withExperience, err := resolveWithExperience(cmd)
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}

	report, err := engine.Evaluate(requirement, candidate, withExperience)
	if err != nil {
		if errors.Is(err, match.ErrIncomparableExperience) {
			logger.Fatal("evaluating experience",
				zap.Error(err),
				zap.String("hint", "set experience.min_years in the requirement and numeric years in each experience record"),
			)
		}
		logger.Fatal("evaluating the candidate", zap.Error(err))
	}

	logger = withReportFields(logger, report)

	logger.Info("evaluation finished")

	pretty, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatal("rendering the report", zap.Error(err))
	}

	fmt.Println(string(pretty))

	outFile := cmd.Flag("out").Value.String()
	if outFile == "" {
		return
	}

	if err := writeEnvelope(outFile, requirement, candidate, report); err != nil {
		logger.Fatal("writing the report file", zap.Error(err))
	}

	logger.Info("report written", zap.String("filename", outFile))
}

// resolveWithExperience decides whether to evaluate the experience dimension.
// The --experience flag wins when set; otherwise the user is asked, unless
// --yes suppresses the prompt.
func resolveWithExperience(cmd *cobra.Command) (bool, error) {
	if cmd.Flags().Changed("experience") {
		return strings.EqualFold(cmd.Flag("experience").Value.String(), "true"), nil
	}

	if cmd.Flag("yes").Value.String() == "true" {
		return true, nil
	}

	_, action, err := prompt.Run()
	if err != nil {
		return false, err
	}

	return action == PromptYes, nil
}

func withReportFields(l *zap.Logger, report *match.Report) *zap.Logger {
	return logger.WithReportFields(l, report.OverallResult, report.OverallScore)
}

func engineOptions(config *Config) []match.Option {
	if config == nil || config.Matching == nil || config.Matching.Fuzzy == nil {
		return nil
	}

	if *config.Matching.Fuzzy {
		return nil
	}

	return []match.Option{match.WithSubstringMatching()}
}

func writeEnvelope(filename string, requirement *profile.JobRequirement, candidate *profile.CandidateProfile, report *match.Report) error {
	envelope := &ReportEnvelope{
		ID:          uuid.NewString(),
		User:        viper.GetString("user"),
		CreatedAt:   time.Now().UTC(),
		Requirement: requirement,
		Profile:     candidate,
		Report:      report,
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling the report envelope: %w", err)
	}

	return os.WriteFile(filename, data, 0o644)
}
