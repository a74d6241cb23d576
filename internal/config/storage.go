package config

// Storage backends selectable in the config file.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendS3     = "s3"
)

// Storage selects where board snapshots are persisted
type Storage struct {
	// Backend is one of "file", "sqlite" or "s3"
	Backend string `yaml:"backend"`
	// Path is the data directory for the file backend or the database
	// file for the sqlite backend. Empty means a default under the
	// user's home directory.
	Path string `yaml:"path"`
	S3   S3     `yaml:"s3"`
}

// S3 holds the settings for the S3 backend.
// It is compatible with MinIO and other S3-compatible services.
type S3 struct {
	Endpoint     string `yaml:"endpoint"`
	Bucket       string `yaml:"bucket"`
	Region       string `yaml:"region"`
	AccessKey    string `yaml:"access_key"`
	SecretKey    string `yaml:"secret_key"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// DefaultStorage returns the default storage settings
func DefaultStorage() Storage {
	return Storage{
		Backend: BackendFile,
	}
}

// applyDefaults fills in missing storage settings with defaults
func (s *Storage) applyDefaults() {
	if s.Backend == "" {
		s.Backend = BackendFile
	}
}
