package trainer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/imishinist/slurm-launch/internal/models"
)

// BuildArgs assembles the trainer's argument list in a fixed order.
// The same Trainer value always yields the same list, so a submission
// can be reproduced exactly from its experiment file.
func BuildArgs(t models.Trainer) []string {
	args := []string{
		"--benchmark", t.Benchmark,
		"--model_name_or_path", t.ModelNameOrPath,
		"--use_pretrained_weights", pythonBool(t.UsePretrainedWeights),
		"--output_dir", t.OutputDir,
	}

	if t.OverwriteOutputDir {
		args = append(args, "--overwrite_output_dir")
	}
	if t.DoTrain {
		args = append(args, "--do_train")
	}
	if t.DoPredict {
		args = append(args, "--do_predict")
	}

	args = append(args,
		"--source_lang", t.SourceLang,
		"--target_lang", t.TargetLang,
		"--source_prefix", t.SourcePrefix,
		"--train_file", t.TrainFile,
		"--test_file", t.TestFile,
	)

	if t.IIDTestFile != "" {
		args = append(args, "--iid_test_file", t.IIDTestFile)
	}

	args = append(args,
		"--per_device_train_batch_size", strconv.Itoa(t.PerDeviceTrainBatchSize),
		"--per_device_eval_batch_size", strconv.Itoa(t.PerDeviceEvalBatchSize),
		"--save_steps", strconv.FormatInt(t.SaveSteps, 10),
		"--max_source_length", strconv.Itoa(t.MaxSourceLength),
		"--max_target_length", strconv.Itoa(t.MaxTargetLength),
	)

	// The trainer defaults val_max_target_length to max_target_length,
	// so it is only passed when set explicitly.
	if t.ValMaxTargetLength > 0 {
		args = append(args, "--val_max_target_length", strconv.Itoa(t.ValMaxTargetLength))
	}
	if t.NumBeams > 0 {
		args = append(args, "--num_beams", strconv.Itoa(t.NumBeams))
	}

	args = append(args, "--num_train_epochs", strconv.FormatFloat(t.NumTrainEpochs, 'f', -1, 64))

	if t.PredictWithGenerate {
		args = append(args, "--predict_with_generate")
	}

	return args
}

// Valid data file extensions accepted by the trainer
var validDataExtensions = map[string]bool{
	"json": true, "jsonl": true,
}

// Validate checks the argument shapes the launcher can see locally.
// Anything beyond shape (file contents, model availability) is the
// trainer's contract.
func Validate(t models.Trainer) error {
	if t.Program == "" {
		return fmt.Errorf("trainer program is required")
	}
	if t.Script == "" {
		return fmt.Errorf("trainer script is required")
	}
	if t.ModelNameOrPath == "" {
		return fmt.Errorf("model_name_or_path is required")
	}
	if t.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	for _, f := range []struct{ name, path string }{
		{"train_file", t.TrainFile},
		{"test_file", t.TestFile},
		{"iid_test_file", t.IIDTestFile},
	} {
		if f.path == "" {
			continue
		}
		if err := validateDataFile(f.name, f.path); err != nil {
			return err
		}
	}

	if t.PerDeviceTrainBatchSize <= 0 {
		return fmt.Errorf("per_device_train_batch_size must be positive, got %d", t.PerDeviceTrainBatchSize)
	}
	if t.PerDeviceEvalBatchSize <= 0 {
		return fmt.Errorf("per_device_eval_batch_size must be positive, got %d", t.PerDeviceEvalBatchSize)
	}
	if t.MaxSourceLength <= 0 {
		return fmt.Errorf("max_source_length must be positive, got %d", t.MaxSourceLength)
	}
	if t.MaxTargetLength <= 0 {
		return fmt.Errorf("max_target_length must be positive, got %d", t.MaxTargetLength)
	}
	if t.NumTrainEpochs <= 0 {
		return fmt.Errorf("num_train_epochs must be positive, got %v", t.NumTrainEpochs)
	}

	return nil
}

// validateDataFile checks that a data file path carries an extension the
// trainer's dataset loader accepts.
func validateDataFile(name, path string) error {
	parts := strings.Split(path, ".")
	ext := parts[len(parts)-1]
	if !validDataExtensions[ext] {
		return fmt.Errorf("%s must be a json or jsonl file, got %s", name, path)
	}
	return nil
}

// pythonBool formats a bool the way the trainer's argument parser
// expects it.
func pythonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
