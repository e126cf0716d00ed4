package models

// Experiment is one full launch configuration: the scheduler allocation,
// the in-job environment setup, and the trainer invocation.
type Experiment struct {
	Resources   Resources   `json:"resources" yaml:"resources"`
	Environment Environment `json:"environment" yaml:"environment"`
	Trainer     Trainer     `json:"trainer" yaml:"trainer"`
}

// Default returns the reference fine-tuning configuration: a single-GPU
// English-to-English COGS run with generation-based evaluation.
// save_steps is set high enough that the trainer never checkpoints
// mid-run; only the final model is written.
func Default() *Experiment {
	return &Experiment{
		Resources: Resources{
			JobName:     "t5-cogs",
			Nodes:       1,
			Gres:        "gpu:rtx8000:1",
			CPUsPerTask: 4,
			Memory:      "32G",
			Walltime:    "48:00:00",
			Output:      "logs/%x-%j.out",
		},
		Environment: Environment{
			Modules: []string{"cuda/11.3"},
		},
		Trainer: Trainer{
			Program:                 "python",
			Script:                  "run_translation.py",
			Benchmark:               "COGS",
			ModelNameOrPath:         "t5-base",
			UsePretrainedWeights:    true,
			OutputDir:               "output/t5-cogs",
			OverwriteOutputDir:      true,
			DoTrain:                 true,
			DoPredict:               true,
			SourceLang:              "en",
			TargetLang:              "en",
			SourcePrefix:            "translate English to English: ",
			TrainFile:               "data/cogs/train.jsonl",
			TestFile:                "data/cogs/gen.jsonl",
			PerDeviceTrainBatchSize: 16,
			PerDeviceEvalBatchSize:  16,
			SaveSteps:               500000,
			MaxSourceLength:         1024,
			MaxTargetLength:         1024,
			NumTrainEpochs:          30,
			PredictWithGenerate:     true,
		},
	}
}
