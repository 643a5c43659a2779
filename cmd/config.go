package cmd

// Config carries everything the process reads from the environment.
// StorageDriver selects the persistence adapter: "json" keeps the stores in
// human-editable files under DataDir, "sqlite" and "postgres" go through gorm.
type Config struct {
	HTTPPort      string
	StorageDriver string
	DataDir       string
	SQLitePath    string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	SummaryCron   string
}
