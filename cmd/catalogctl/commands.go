package main

import (
	"context"
	"course_builder_backend/internal/model"
	"course_builder_backend/internal/service"
	"course_builder_backend/internal/util"
	"course_builder_backend/pkg/catalogclient"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const requestTimeout = 30 * time.Second

type options struct {
	server  string
	learner string
}

func getDefaultServer() string {
	if server := os.Getenv("COURSE_BUILDER_SERVER"); server != "" {
		return server
	}
	return "http://localhost:3000"
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "catalogctl - query and drive a Course Builder API server",
		Long: `catalogctl is a command-line client for the Course Builder API.
All output is JSON (pipe through jq for human-readable formatting).`,
		Version:       util.ServiceVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.server, "server", "s", getDefaultServer(), "Course Builder server URL")
	rootCmd.PersistentFlags().StringVarP(&opts.learner, "learner", "l", "", "Learner ID used by enroll, feedback and progress")

	rootCmd.AddCommand(newCoursesCommand(opts))
	rootCmd.AddCommand(newLessonsCommand(opts))
	rootCmd.AddCommand(newEnrollCommand(opts))
	rootCmd.AddCommand(newFeedbackCommand(opts))
	rootCmd.AddCommand(newProgressCommand(opts))
	rootCmd.AddCommand(newPathsCommand(opts))

	return rootCmd
}

func (o *options) client() *catalogclient.Client {
	return catalogclient.New(o.server)
}

func (o *options) requireLearner() (string, error) {
	if o.learner == "" {
		return "", errors.New("--learner is required")
	}
	return o.learner, nil
}

func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), requestTimeout)
}

// outputJSON 缩进输出，所有命令都走这里
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --- courses ---

func newCoursesCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse the course catalog",
	}
	cmd.AddCommand(newCoursesListCommand(opts))
	cmd.AddCommand(newCoursesGetCommand(opts))
	return cmd
}

func newCoursesListCommand(opts *options) *cobra.Command {
	var courseType string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Example: `  catalogctl courses list
  catalogctl courses list --type=personalized`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			courses, err := opts.client().ListCourses(ctx, model.CourseType(courseType))
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), courses)
		},
	}
	cmd.Flags().StringVar(&courseType, "type", "", "Filter by course type (general, personalized)")
	return cmd
}

func newCoursesGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <course_id>",
		Short: "Show one course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			course, err := opts.client().GetCourse(ctx, args[0])
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), course)
		},
	}
}

func newLessonsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lessons <course_id>",
		Short: "List the lessons of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			lessons, err := opts.client().GetCourseLessons(ctx, args[0])
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), lessons)
		},
	}
}

func newPathsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List learning paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			paths, err := opts.client().ListLearningPaths(ctx)
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), paths)
		},
	}
}

// --- enrollment & feedback ---

func newEnrollCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "enroll <course_id>",
		Short:   "Enroll the learner in a course",
		Example: `  catalogctl enroll course_001 --learner=learner_001`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			learnerID, err := opts.requireLearner()
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()

			receipt, err := opts.client().Enroll(ctx, args[0], learnerID)
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), receipt)
		},
	}
}

func newFeedbackCommand(opts *options) *cobra.Command {
	var (
		rating   int
		comments string
	)
	cmd := &cobra.Command{
		Use:     "feedback <course_id>",
		Short:   "Submit course feedback",
		Example: `  catalogctl feedback course_001 --learner=learner_001 --rating=5 --comments="Great pacing"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			learnerID, err := opts.requireLearner()
			if err != nil {
				return err
			}

			req := service.FeedbackRequest{LearnerID: learnerID, Rating: rating, Comments: comments}
			if err := service.ValidateFeedback(req); err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()

			fb, err := opts.client().SubmitFeedback(ctx, args[0], req)
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), fb)
		},
	}
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating from 1 to 5")
	cmd.Flags().StringVar(&comments, "comments", "", "Optional comments")
	return cmd
}

// --- progress ---

func newProgressCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Read or update learner progress",
	}
	cmd.AddCommand(newProgressGetCommand(opts))
	cmd.AddCommand(newProgressCompleteCommand(opts))
	return cmd
}

func newProgressGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show enrollments and per-course progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			learnerID, err := opts.requireLearner()
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()

			state, err := opts.client().GetProgress(ctx, learnerID)
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), state)
		},
	}
}

func newProgressCompleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <course_id> <lesson_id>",
		Short:   "Mark a lesson as completed",
		Example: `  catalogctl progress complete course_001 lesson_002 --learner=learner_001`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			learnerID, err := opts.requireLearner()
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()

			p, err := opts.client().UpdateProgress(ctx, learnerID, service.LessonProgressRequest{
				CourseID:  args[0],
				LessonID:  args[1],
				Completed: true,
			})
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), p)
		},
	}
}
