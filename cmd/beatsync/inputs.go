package main

import (
	"encoding/json"
	"fmt"
	"os"

	"beatsync/internal/beats"
	"beatsync/internal/segments"
	"beatsync/internal/srt"
)

// beatInput is one entry of a beats JSON file, as produced by the
// browser-side beat detector: the text a click reveals plus an optional
// type tag.
type beatInput struct {
	Text string `json:"text"`
	Type string `json:"type,omitempty"`
}

func readCueFile(path string) ([]srt.Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitle file: %w", err)
	}
	return srt.ParseCues(string(data)), nil
}

func readBeatsFile(path string) ([]beats.Beat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read beats file: %w", err)
	}

	var inputs []beatInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		// Plain string arrays are accepted as an untyped shorthand.
		var texts []string
		if strErr := json.Unmarshal(data, &texts); strErr != nil {
			return nil, fmt.Errorf("parse beats file: %w", err)
		}
		inputs = make([]beatInput, len(texts))
		for i, text := range texts {
			inputs[i] = beatInput{Text: text}
		}
	}

	list := make([]beats.Beat, len(inputs))
	for i, input := range inputs {
		list[i] = beats.Beat{
			Index: i,
			Text:  input.Text,
			Type:  beats.Type(input.Type),
		}
	}
	return list, nil
}

func readSegmentsFile(path string) ([]segments.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read segments file: %w", err)
	}
	var segs []segments.Segment
	if err := json.Unmarshal(data, &segs); err != nil {
		return nil, fmt.Errorf("parse segments file: %w", err)
	}
	for i := range segs {
		if segs[i].Num == 0 {
			segs[i].Num = i + 1
		}
	}
	return segs, nil
}
