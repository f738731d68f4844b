package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/snarky-quiz/internal/config"
	"github.com/aliskhannn/snarky-quiz/internal/logger"
	"github.com/aliskhannn/snarky-quiz/internal/repository"
)

// NewRootCommand builds the terminal quiz command.
func NewRootCommand() *cobra.Command {
	var (
		configFile string
		quizPath   string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Play the trivia quiz in the terminal",
		Long: `Quiz presents a fixed sequence of multiple-choice questions,
reveals commentary after every answer and classifies the final score.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if configFile != "" {
				opts = append(opts, config.WithConfigFile(configFile))
			}
			cfg, err := config.Load(opts...)
			if err != nil {
				return err
			}
			if quizPath != "" {
				cfg.QuizPath = quizPath
			}

			log := zap.NewNop()
			if verbose {
				log, err = logger.New(cfg)
				if err != nil {
					return err
				}
				defer func() { _ = log.Sync() }()
			}

			repo, err := repository.NewQuizRepository(cfg.QuizPath)
			if err != nil {
				return err
			}

			return Run(cmd.Context(), repo.Get(), cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a config file (default ./config/config.yaml)")
	cmd.Flags().StringVar(&quizPath, "quiz", "", "path to a quiz JSON file replacing the built-in quiz")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log state transitions to stderr")

	return cmd
}
