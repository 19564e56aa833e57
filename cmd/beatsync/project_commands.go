package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"beatsync/internal/logging"
	"beatsync/internal/project"
	"beatsync/internal/segments"
)

func newProjectCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage voiceover projects and their segment timings",
	}
	cmd.AddCommand(newProjectCreateCommand(ctx))
	cmd.AddCommand(newProjectListCommand(ctx))
	cmd.AddCommand(newProjectImportCommand(ctx))
	cmd.AddCommand(newProjectMatchCommand(ctx))
	cmd.AddCommand(newProjectShowCommand(ctx))
	return cmd
}

func newProjectCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *project.Store) error {
				proj, err := store.CreateProject(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("create project: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", proj.Name, proj.ID)
				return nil
			})
		},
	}
}

func newProjectListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *project.Store) error {
				projects, err := store.ListProjects(cmd.Context())
				if err != nil {
					return err
				}
				if len(projects) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No projects.")
					return nil
				}
				rows := make([][]string, 0, len(projects))
				for _, proj := range projects {
					rows = append(rows, []string{
						proj.Name,
						proj.ID,
						proj.UpdatedAt.Local().Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Name", "ID", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func newProjectImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <name> <segments.json>",
		Short: "Import or replace a project's segment scripts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			segs, err := readSegmentsFile(args[1])
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *project.Store) error {
				proj, err := findOrCreateProject(cmd, store, args[0])
				if err != nil {
					return err
				}
				if err := store.ImportSegments(cmd.Context(), proj.ID, segs); err != nil {
					return fmt.Errorf("import segments: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d segments into %s\n", len(segs), proj.Name)
				return nil
			})
		},
	}
}

func newProjectMatchCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "match <name> <subtitle.srt>",
		Short: "Align a project's segments to a transcript and store the timings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.ensureLogger(), "segments")

			cues, err := readCueFile(args[1])
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *project.Store) error {
				proj, err := store.GetProjectByName(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				segs, err := store.ListSegments(cmd.Context(), proj.ID)
				if err != nil {
					return err
				}
				if len(segs) == 0 {
					return fmt.Errorf("project %s has no segments; run 'beatsync project import' first", proj.Name)
				}

				opts := segments.Options{
					WindowCap:  cfg.Alignment.SegmentWindowCap,
					StallLimit: cfg.Alignment.SegmentStallLimit,
					MinScore:   cfg.Alignment.SegmentMinScore,
					Spacing:    cfg.Alignment.SegmentSpacingSeconds,
				}
				matches := segments.MatchSegments(cues, segs, opts)

				matched := 0
				for _, match := range matches {
					if match.Matched {
						matched++
					}
				}
				logger.Info("matched segments",
					logging.String("project", proj.Name),
					logging.Int("cues", len(cues)),
					logging.Int("segments", len(segs)),
					logging.Int("matched", matched))

				if err := store.SaveTimings(cmd.Context(), proj.ID, matches); err != nil {
					return fmt.Errorf("save timings: %w", err)
				}

				if jsonFlag {
					return writeJSON(cmd, matches)
				}
				renderSegmentMatches(cmd, matches)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the result as JSON")
	return cmd
}

func newProjectShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a project's segments and latest stored timings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *project.Store) error {
				proj, err := store.GetProjectByName(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				segs, err := store.ListSegments(cmd.Context(), proj.ID)
				if err != nil {
					return err
				}
				timings, err := store.Timings(cmd.Context(), proj.ID)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d segments\n\n",
					displayTitle(proj.Name), len(segs))

				byNum := make(map[int]project.Timing, len(timings))
				for _, t := range timings {
					byNum[t.Num] = t
				}

				rows := make([][]string, 0, len(segs))
				for _, seg := range segs {
					row := []string{
						strconv.Itoa(seg.Num),
						truncate(seg.Script, 44),
						strconv.Itoa(len(seg.HTMLFiles)),
						"-", "-", "-", "-",
					}
					if t, ok := byNum[seg.Num]; ok {
						row[3] = yesNo(t.Matched)
						row[4] = formatConfidence(t.Confidence)
						row[5] = formatSeconds(t.StartTime)
						row[6] = formatSeconds(t.EndTime)
					}
					rows = append(rows, row)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Seg", "Script", "Files", "Matched", "Conf", "Start", "End"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}

func renderSegmentMatches(cmd *cobra.Command, matches []segments.Match) {
	rows := make([][]string, 0, len(matches))
	for _, match := range matches {
		cueRange := "-"
		if match.StartCueIndex != nil && match.EndCueIndex != nil {
			cueRange = fmt.Sprintf("%d-%d", *match.StartCueIndex, *match.EndCueIndex)
		}
		rows = append(rows, []string{
			strconv.Itoa(match.Num),
			yesNo(match.Matched),
			formatConfidence(match.Confidence),
			cueRange,
			formatSeconds(match.StartTime),
			formatSeconds(match.EndTime),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Seg", "Matched", "Conf", "Cues", "Start", "End"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignRight},
	))
}

func findOrCreateProject(cmd *cobra.Command, store *project.Store, name string) (*project.Project, error) {
	proj, err := store.GetProjectByName(cmd.Context(), name)
	if err == nil {
		return proj, nil
	}
	if !errors.Is(err, project.ErrNotFound) {
		return nil, err
	}
	return store.CreateProject(cmd.Context(), name)
}

// displayTitle renders a stored project name as a human-facing heading.
func displayTitle(name string) string {
	return cases.Title(language.Und).String(name)
}
