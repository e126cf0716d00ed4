package models

// Trainer holds the argument list handed to the external training
// program. Field names mirror the trainer's own flags; semantic validity
// of each value is the trainer's contract, not ours.
type Trainer struct {
	Program string `json:"program" yaml:"program"`
	Script  string `json:"script" yaml:"script"`

	Benchmark            string `json:"benchmark" yaml:"benchmark"`
	ModelNameOrPath      string `json:"model_name_or_path" yaml:"model_name_or_path"`
	UsePretrainedWeights bool   `json:"use_pretrained_weights" yaml:"use_pretrained_weights"`
	OutputDir            string `json:"output_dir" yaml:"output_dir"`
	OverwriteOutputDir   bool   `json:"overwrite_output_dir" yaml:"overwrite_output_dir"`
	DoTrain              bool   `json:"do_train" yaml:"do_train"`
	DoPredict            bool   `json:"do_predict" yaml:"do_predict"`
	SourceLang           string `json:"source_lang" yaml:"source_lang"`
	TargetLang           string `json:"target_lang" yaml:"target_lang"`
	SourcePrefix         string `json:"source_prefix" yaml:"source_prefix"`
	TrainFile            string `json:"train_file" yaml:"train_file"`
	TestFile             string `json:"test_file" yaml:"test_file"`
	IIDTestFile          string `json:"iid_test_file,omitempty" yaml:"iid_test_file,omitempty"`

	PerDeviceTrainBatchSize int     `json:"per_device_train_batch_size" yaml:"per_device_train_batch_size"`
	PerDeviceEvalBatchSize  int     `json:"per_device_eval_batch_size" yaml:"per_device_eval_batch_size"`
	SaveSteps               int64   `json:"save_steps" yaml:"save_steps"`
	MaxSourceLength         int     `json:"max_source_length" yaml:"max_source_length"`
	MaxTargetLength         int     `json:"max_target_length" yaml:"max_target_length"`
	ValMaxTargetLength      int     `json:"val_max_target_length,omitempty" yaml:"val_max_target_length,omitempty"`
	NumBeams                int     `json:"num_beams,omitempty" yaml:"num_beams,omitempty"`
	NumTrainEpochs          float64 `json:"num_train_epochs" yaml:"num_train_epochs"`
	PredictWithGenerate     bool    `json:"predict_with_generate" yaml:"predict_with_generate"`
}
