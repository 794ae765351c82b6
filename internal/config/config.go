package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"resume-rag/internal/models"
)

type Config struct {
	RAG      RAGConfig   `yaml:"rag"`
	Store    StoreConfig `yaml:"store"`
	EmbedLLM LLMConfig   `yaml:"embed_llm"`
	GenLLM   LLMConfig   `yaml:"gen_llm"`
	Sink     SinkConfig  `yaml:"sink"`
	Batch    BatchConfig `yaml:"batch"`
}

type RAGConfig struct {
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
	TopK         int `yaml:"top_k"`
}

type StoreConfig struct {
	// Backend is "chromem" (embedded, default) or "postgres".
	Backend string `yaml:"backend"`
	// Path of the chromem database directory; empty means in-memory.
	Path string `yaml:"path"`
	// DSN and Password are used by the postgres backend only.
	DSN      string `yaml:"dsn"`
	Password string `yaml:"password"`
	Debug    bool   `yaml:"debug"`
}

type LLMConfig struct {
	// Provider is "openai" (any OpenAI-compatible endpoint) or "ollama".
	Provider    string  `yaml:"provider"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Key         string  `yaml:"key"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

type SinkConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type BatchConfig struct {
	Dir       string              `yaml:"dir"`
	MaxTokens int                 `yaml:"max_tokens"`
	Fields    []models.FieldQuery `yaml:"fields"`
}

const (
	defaultChunkSize      = 500
	defaultChunkOverlap   = 75
	defaultTopK           = 3
	defaultMaxTokens      = 512
	defaultBatchMaxTokens = 1024
	defaultTemperature    = 0.6
	defaultSinkTimeout    = 30
)

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.RAG.ChunkSize == 0 {
		c.RAG.ChunkSize = defaultChunkSize
		c.RAG.ChunkOverlap = defaultChunkOverlap
	}
	if c.RAG.TopK == 0 {
		c.RAG.TopK = defaultTopK
	}
	if c.Store.Backend == "" {
		c.Store.Backend = "chromem"
	}
	if c.GenLLM.MaxTokens == 0 {
		c.GenLLM.MaxTokens = defaultMaxTokens
	}
	if c.GenLLM.Temperature == 0 {
		c.GenLLM.Temperature = defaultTemperature
	}
	if c.Batch.MaxTokens == 0 {
		c.Batch.MaxTokens = defaultBatchMaxTokens
	}
	if len(c.Batch.Fields) == 0 {
		c.Batch.Fields = models.DefaultFieldQueries
	}
	if c.Sink.TimeoutSeconds == 0 {
		c.Sink.TimeoutSeconds = defaultSinkTimeout
	}
	// Keys may reference environment variables, e.g. "${OPENROUTER_KEY}".
	c.EmbedLLM.Key = os.ExpandEnv(c.EmbedLLM.Key)
	c.GenLLM.Key = os.ExpandEnv(c.GenLLM.Key)
	c.Store.Password = os.ExpandEnv(c.Store.Password)
}

// Validate rejects parameter combinations the pipeline cannot run with.
// Chunk parameter violations are fatal, never retried.
func (c *Config) Validate() error {
	if c.RAG.ChunkSize <= 0 {
		return fmt.Errorf("config: chunk_size must be > 0, got %d", c.RAG.ChunkSize)
	}
	if c.RAG.ChunkOverlap < 0 || c.RAG.ChunkOverlap >= c.RAG.ChunkSize {
		return fmt.Errorf("config: chunk_overlap must be in [0, chunk_size), got %d", c.RAG.ChunkOverlap)
	}
	if c.RAG.TopK <= 0 {
		return fmt.Errorf("config: top_k must be > 0, got %d", c.RAG.TopK)
	}
	switch c.Store.Backend {
	case "chromem", "postgres":
	default:
		return fmt.Errorf("config: unknown store backend %q", c.Store.Backend)
	}
	return nil
}
