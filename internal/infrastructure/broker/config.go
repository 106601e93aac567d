package broker

type Config struct {
	URI        string
	StreamName string `yaml:"stream_name"`
	GroupName  string `yaml:"group_name"`
}

type PublisherConfig struct {
	Timeout int `yaml:"timeout_in_ms"`
}

type ReceiverConfig struct {
	BlockInMS int64 `yaml:"block_in_ms"`
}
