package constants

// Cluster create defaults
const (
	ClusterIDPrefix           = "cluster"
	DefaultClusterName        = "New Cluster"
	DefaultClusterDescription = ""
)
