package cmd

import (
	"github.com/etnz/payments/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	inputs := predict.Or(predict.Files("*.csv"), predict.Files("*.json"))
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"process": {
				Flags: map[string]complete.Predictor{
					"o":            predict.Files("*"),
					"format":       predict.Set{"csv", "json"},
					"precision":    predict.Something,
					"metrics-file": predict.Files("*.prom"),
				},
				Args: inputs,
			},
			"report": {
				Flags: map[string]complete.Predictor{
					"o":      predict.Files("*"),
					"format": predict.Set{"markdown", "table", "html"},
					"c":      predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
					"raw":    predict.Nothing,
				},
				Args: inputs,
			},
			"rejected": {
				Flags: map[string]complete.Predictor{
					"o":      predict.Files("*"),
					"format": predict.Set{"markdown", "json"},
				},
				Args: inputs,
			},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Set(topics),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"log-level":    predict.Set{"debug", "info", "warn", "error"},
			"input-format": predict.Set{"csv", "json"},
			"jsonpath":     predict.Something,
		},
	}
}
