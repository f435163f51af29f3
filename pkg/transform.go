package pkg

import (
	"context"
	"slices"
)

// ComponentContext carries what decomposition needs from the caller: the
// virtual clusters the current user may submit to, and where to surface
// user-facing warnings.
type ComponentContext struct {
	VirtualClusters []string
	Notifier        Notifier
}

// JobComponents is the editable form state derived from a protocol document.
type JobComponents struct {
	JobInformation *JobBasicInfo  `yaml:"jobInformation" json:"jobInformation"`
	TaskRoles      []*JobTaskRole `yaml:"taskRoles" json:"taskRoles"`
	Parameters     []KeyValueItem `yaml:"parameters" json:"parameters"`
	Secrets        []KeyValueItem `yaml:"secrets" json:"secrets"`
	Extras         *JobExtras     `yaml:"extras,omitempty" json:"extras,omitempty"`
}

const redactedSecretsWarning = "The secrets of the job are removed by the system, please update them before submitting."

// GetJobComponentsFromConfig decomposes a protocol document into form
// components. The input is not modified: stripping of previously generated
// sections happens on a clone. A nil document decomposes to nil.
//
// When the document's recorded virtual cluster is not among the context's
// known clusters the job information falls back to the default cluster.
// A redacted secrets block yields an empty secrets list plus a warning
// through the context's Notifier.
func GetJobComponentsFromConfig(protocol *JobProtocol, ctx ComponentContext) (*JobComponents, error) {
	if protocol == nil {
		return nil, nil
	}
	clone, err := protocol.Clone()
	if err != nil {
		return nil, err
	}
	removeAutoGeneratedCode(clone)

	jobInformation := JobBasicInfoFromProtocol(clone)
	if !slices.Contains(ctx.VirtualClusters, jobInformation.VirtualCluster) {
		jobInformation.VirtualCluster = DefaultVirtualCluster
	}

	taskRoles := make([]*JobTaskRole, 0, len(clone.TaskRoles))
	for _, role := range clone.TaskRoles {
		taskRoles = append(taskRoles, JobTaskRoleFromProtocol(role.Name, role.Spec, clone.Deployments, clone.Prerequisites, clone.Secrets))
	}

	secrets := []KeyValueItem{}
	if clone.Secrets.Redacted {
		MetricRedactedSecrets.Inc()
		if ctx.Notifier != nil {
			ctx.Notifier.Warn(redactedSecretsWarning)
		}
	} else {
		secrets = keyValueItems(clone.Secrets.Values)
	}

	return &JobComponents{
		JobInformation: jobInformation,
		TaskRoles:      taskRoles,
		Parameters:     keyValueItems(clone.Parameters),
		Secrets:        secrets,
		Extras:         clone.Extras,
	}, nil
}

// PopulateProtocolWithDataAndTensorBoard injects the generated command
// sections into the document, in place:
//
//  1. a TensorBoard launch block prepended to the first task role, with its
//     port registered on that role,
//  2. the job-data pre-commands prepended to every task role,
//  3. the selected storage config names recorded on extras.
//
// Steps 2 and 3 are skipped when the provider reports no data to mount.
func PopulateProtocolWithDataAndTensorBoard(ctx context.Context, user string, protocol *JobProtocol, jobData JobData) error {
	if protocol == nil || len(protocol.TaskRoles) == 0 {
		return nil
	}
	ctx, span := GetTracer().Start(ctx, "populate-protocol")
	defer span.End()

	if protocol.Extras != nil && protocol.Extras.TensorBoard != nil {
		injectTensorBoard(protocol.TaskRoles[0], protocol.Extras.TensorBoard)
	}

	if jobData == nil || !jobData.ContainData() {
		return nil
	}

	dataCommands, err := jobData.GenerateDataCommands(ctx, user, protocol.Name)
	if err != nil {
		return err
	}
	for _, role := range protocol.TaskRoles {
		role.Spec.Commands = prepend(dataCommands, role.Spec.Commands)
	}
	MetricSectionsInjected.WithLabelValues(string(SectionTeamwiseData)).Inc()

	if protocol.Extras != nil {
		selected := jobData.SelectedConfigs()
		names := make([]string, 0, len(selected))
		for _, config := range selected {
			names = append(names, config.Name)
		}
		protocol.Extras.StorageConfigNames = names
	}
	return nil
}

func injectTensorBoard(role *NamedTaskRole, extras *TensorBoardExtras) {
	block := WrapSection(SectionTensorBoard, tensorBoardLaunchCommand(extras))
	role.Spec.Commands = prepend(block, role.Spec.Commands)
	if role.Spec.Resources == nil {
		role.Spec.Resources = &ResourceSpec{}
	}
	if role.Spec.Resources.Ports == nil {
		role.Spec.Resources.Ports = make(map[string]int, 1)
	}
	role.Spec.Resources.Ports[TensorBoardPortName(extras.RandomStr)] = 1
	MetricSectionsInjected.WithLabelValues(string(SectionTensorBoard)).Inc()
}

// removeAutoGeneratedCode strips every well-formed generated section from
// every task role and drops the TensorBoard port registration. Malformed
// sections are left alone. Mutates the document.
func removeAutoGeneratedCode(protocol *JobProtocol) {
	if protocol == nil {
		return
	}
	var tensorBoardPort string
	if protocol.Extras != nil && protocol.Extras.TensorBoard != nil {
		tensorBoardPort = TensorBoardPortName(protocol.Extras.TensorBoard.RandomStr)
	}
	for _, role := range protocol.TaskRoles {
		if len(role.Spec.Commands) > 0 {
			commands, removed := RemoveSections(role.Spec.Commands, SectionCustomStorage, SectionTeamwiseData, SectionTensorBoard)
			role.Spec.Commands = commands
			for _, section := range removed {
				MetricSectionsRemoved.WithLabelValues(string(section.Kind)).Inc()
			}
		}
		if tensorBoardPort != "" && role.Spec.Resources != nil {
			delete(role.Spec.Resources.Ports, tensorBoardPort)
		}
	}
}

func prepend(head, tail []string) []string {
	combined := make([]string, 0, len(head)+len(tail))
	combined = append(combined, head...)
	return append(combined, tail...)
}
