package constants

// Resource kinds, used in ids and NotFound messages
const (
	ModelIDPrefix  = "model"
	WorkerIDPrefix = "worker"

	KindModel   = "Model"
	KindCluster = "Cluster"
	KindTask    = "Task"
	KindWorker  = "Worker"
)
