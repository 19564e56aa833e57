package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"beatsync/internal/beats"
	"beatsync/internal/logging"
	"beatsync/internal/timing"
)

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var floorFlag, ceilFlag float64
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "align <subtitle.srt> <beats.json>",
		Short: "Align one file's animation beats to its subtitle cues",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.ensureLogger(), "align")

			cues, err := readCueFile(args[0])
			if err != nil {
				return err
			}
			beatList, err := readBeatsFile(args[1])
			if err != nil {
				return err
			}

			var bounds timing.Bounds
			if cmd.Flags().Changed("floor") {
				bounds.Floor = &floorFlag
			}
			if cmd.Flags().Changed("ceil") {
				bounds.Ceil = &ceilFlag
			}

			opts := beats.Options{
				Threshold:      cfg.Alignment.BeatThreshold,
				LabelThreshold: cfg.Alignment.LabelBeatThreshold,
			}
			result := beats.Align(cues, beatList, opts, bounds)

			matched := 0
			for _, match := range result.Matches {
				if match.CueIndex != nil {
					matched++
				}
			}
			logger.Info("aligned beats",
				logging.Int("cues", len(cues)),
				logging.Int("beats", len(beatList)),
				logging.Int("matched", matched))

			if jsonFlag {
				return writeJSON(cmd, result)
			}
			renderAlignResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&floorFlag, "floor", 0, "Earliest time in seconds for interpolated beats")
	cmd.Flags().Float64Var(&ceilFlag, "ceil", 0, "Latest time in seconds for interpolated beats")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the result as JSON")
	return cmd
}

func renderAlignResult(cmd *cobra.Command, result beats.Result) {
	rows := make([][]string, 0, len(result.Matches))
	for i, match := range result.Matches {
		cue := "-"
		score := "-"
		cueText := ""
		if match.CueIndex != nil {
			cue = strconv.Itoa(*match.CueIndex)
			score = strconv.FormatFloat(match.Score, 'f', 0, 64)
			if match.CueText != nil {
				cueText = truncate(*match.CueText, 40)
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(match.BeatIndex),
			formatSeconds(result.Times[i]),
			cue,
			score,
			truncate(match.BeatText, 30),
			cueText,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Beat", "Time", "Cue", "Score", "Beat Text", "Cue Text"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft},
	))
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', 3, 64)
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

func formatConfidence(value float64) string {
	return strconv.FormatFloat(math.Round(value), 'f', 0, 64)
}
