package pkg

import "sort"

// KeyValueItem is one editable form row.
type KeyValueItem struct {
	Key   string `yaml:"key" json:"key"`
	Value any    `yaml:"value" json:"value"`
}

// JobBasicInfo is the top-of-form job metadata.
type JobBasicInfo struct {
	Name           string `yaml:"name" json:"name"`
	JobRetryCount  int    `yaml:"jobRetryCount" json:"jobRetryCount"`
	VirtualCluster string `yaml:"virtualCluster" json:"virtualCluster"`
}

// JobBasicInfoFromProtocol is total: missing fields fall back to zero values
// and the default virtual cluster.
func JobBasicInfoFromProtocol(protocol *JobProtocol) *JobBasicInfo {
	info := &JobBasicInfo{
		Name:           protocol.Name,
		JobRetryCount:  protocol.JobRetryCount,
		VirtualCluster: protocol.Defaults.VirtualCluster,
	}
	if info.VirtualCluster == "" {
		info.VirtualCluster = DefaultVirtualCluster
	}
	return info
}

// JobTaskRole is the per-role form model.
type JobTaskRole struct {
	Name          string           `yaml:"name" json:"name"`
	Instances     int              `yaml:"instances" json:"instances"`
	DockerImage   string           `yaml:"dockerImage" json:"dockerImage"`
	Commands      []string         `yaml:"commands" json:"commands"`
	Ports         map[string]int   `yaml:"ports,omitempty" json:"ports,omitempty"`
	Deployments   []map[string]any `yaml:"deployments,omitempty" json:"deployments,omitempty"`
	Prerequisites []map[string]any `yaml:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	Secrets       []KeyValueItem   `yaml:"secrets,omitempty" json:"secrets,omitempty"`
}

func JobTaskRoleFromProtocol(name string, spec TaskRoleSpec, deployments, prerequisites []map[string]any, secrets SecretStore) *JobTaskRole {
	role := &JobTaskRole{
		Name:          name,
		Instances:     spec.Instances,
		DockerImage:   spec.DockerImage,
		Commands:      append([]string{}, spec.Commands...),
		Deployments:   deployments,
		Prerequisites: prerequisites,
	}
	if spec.Resources != nil && len(spec.Resources.Ports) > 0 {
		role.Ports = make(map[string]int, len(spec.Resources.Ports))
		for portName, count := range spec.Resources.Ports {
			role.Ports[portName] = count
		}
	}
	if !secrets.Redacted {
		role.Secrets = keyValueItems(secrets.Values)
	}
	return role
}

// keyValueItems flattens a mapping into form rows, sorted by key so the form
// layout is stable.
func keyValueItems(values map[string]any) []KeyValueItem {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	items := make([]KeyValueItem, 0, len(keys))
	for _, key := range keys {
		items = append(items, KeyValueItem{Key: key, Value: values[key]})
	}
	return items
}
