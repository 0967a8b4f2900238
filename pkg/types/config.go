package types

// AIConfig holds shared settings for stages that call the completion API.
type AIConfig struct {
	// Model is the model identifier (e.g. "gpt-5"). Must be a key of
	// ModelCatalog.
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the completion API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// GenerationConfig holds settings for the question generation stage.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	// NumQuestions is the number of questions to request per lecture
	// (default 20).
	NumQuestions int `json:"num_questions" yaml:"num_questions"`

	// SlicesDir is the directory containing lecture PDFs (default "slices").
	SlicesDir string `json:"slices_dir" yaml:"slices_dir"`

	// OutputDir is the directory for per-lecture JSON files (default
	// "questions"). Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// PromptFile is the path to the prompt template (default
	// "prompts/exam.txt").
	PromptFile string `json:"prompt_file" yaml:"prompt_file"`
}

// ExportConfig holds settings for the text export stage.
type ExportConfig struct {
	// QuestionsDir is the directory containing per-lecture JSON files
	// (default "questions").
	QuestionsDir string `json:"questions_dir" yaml:"questions_dir"`

	// OutputDir is the directory for the exported text files (default
	// "questions_txt"). Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
