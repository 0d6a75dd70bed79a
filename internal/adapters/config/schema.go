package config

// File represents the structure of the pacforge.yaml configuration file.
type File struct {
	Repository  RepositoryDTO  `yaml:"repository"`
	Storage     StorageDTO     `yaml:"storage"`
	Build       BuildDTO       `yaml:"build"`
	Distributed DistributedDTO `yaml:"distributed"`
	Notify      NotifyDTO      `yaml:"notify"`
}

// RepositoryDTO identifies the repository being managed.
type RepositoryDTO struct {
	Name         string `yaml:"name"`
	Architecture string `yaml:"architecture"`
}

// StorageDTO configures the database.
type StorageDTO struct {
	Path string `yaml:"path"`
}

// BuildDTO configures building and the trigger pipeline.
type BuildDTO struct {
	Command              []string                     `yaml:"command"`
	PublishCommand       []string                     `yaml:"publish_command"`
	Workers              []string                     `yaml:"workers"`
	UseRegisteredWorkers bool                         `yaml:"use_registered_workers"`
	Timeout              string                       `yaml:"timeout"`
	PollInterval         string                       `yaml:"poll_interval"`
	Triggers             []string                     `yaml:"triggers"`
	TriggerOptions       map[string]map[string]string `yaml:"trigger_options"`
}

// DistributedDTO configures the coordinator and worker roles.
type DistributedDTO struct {
	Coordinator string `yaml:"coordinator"`
	Address     string `yaml:"address"`
	Identifier  string `yaml:"identifier"`
	TimeToLive  string `yaml:"time_to_live"`
	Listen      string `yaml:"listen"`
}

// NotifyDTO configures NATS notifications.
type NotifyDTO struct {
	URL     string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}
