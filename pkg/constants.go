package pkg

// Sentinel lines bounding auto-generated command sections. The exact strings
// are load-bearing: stripping only recognizes sections bounded by them, so
// changing one orphans sections written by older versions.
const (
	customStorageCmdStart = "# CUSTOM STORAGE START"
	customStorageCmdEnd   = "# CUSTOM STORAGE END"

	teamwiseDataCmdStart = "# TEAMWISE STORAGE START"
	teamwiseDataCmdEnd   = "# TEAMWISE STORAGE END"

	tensorBoardCmdStart = "# TENSORBOARD START"
	tensorBoardCmdEnd   = "# TENSORBOARD END"

	// AutoGeneratedNotice is the second line of every generated section.
	AutoGeneratedNotice = "# Auto generated code, please do not modify"
)

const (
	// RedactedSecretsMarker is the exact string the platform substitutes for
	// the whole secrets block when returning a stored job config.
	RedactedSecretsMarker = "******"

	// DefaultVirtualCluster is assigned when a job's recorded virtual
	// cluster is unknown to the current user.
	DefaultVirtualCluster = "default"

	// DefaultTensorBoardLogDir is the log directory a fresh TensorBoard
	// extras record points at.
	DefaultTensorBoardLogDir = "/mnt/tensorboard"
)
