package pkg

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// JobProtocol is the wire-level job specification document the submission
// plugin edits. Open sub-documents the transformer never touches
// (prerequisites, deployments) stay loosely typed.
type JobProtocol struct {
	ProtocolVersion string           `yaml:"protocolVersion,omitempty"`
	Name            string           `yaml:"name,omitempty"`
	Type            string           `yaml:"type,omitempty"`
	JobRetryCount   int              `yaml:"jobRetryCount,omitempty"`
	Prerequisites   []map[string]any `yaml:"prerequisites,omitempty"`
	Parameters      map[string]any   `yaml:"parameters,omitempty"`
	Secrets         SecretStore      `yaml:"secrets,omitempty"`
	TaskRoles       TaskRoleList     `yaml:"taskRoles,omitempty"`
	Deployments     []map[string]any `yaml:"deployments,omitempty"`
	Defaults        JobDefaults      `yaml:"defaults,omitempty"`
	Extras          *JobExtras       `yaml:"extras,omitempty"`
}

type JobDefaults struct {
	VirtualCluster string         `yaml:"virtualCluster,omitempty"`
	Other          map[string]any `yaml:",inline"`
}

// JobExtras is the side-channel mapping for non-core features. Keys the
// transformer knows about are explicit fields; everything else survives
// round-trips through the inline remainder.
type JobExtras struct {
	TensorBoard        *TensorBoardExtras `yaml:"tensorBoard,omitempty"`
	StorageConfigNames []string           `yaml:"storageConfigNames,omitempty"`
	Other              map[string]any     `yaml:",inline"`
}

type TaskRoleSpec struct {
	Instances   int            `yaml:"instances,omitempty"`
	DockerImage string         `yaml:"dockerImage,omitempty"`
	Resources   *ResourceSpec  `yaml:"resourcePerInstance,omitempty"`
	Commands    []string       `yaml:"commands,omitempty"`
	Other       map[string]any `yaml:",inline"`
}

type ResourceSpec struct {
	CPU      int            `yaml:"cpu,omitempty"`
	MemoryMB int            `yaml:"memoryMB,omitempty"`
	GPU      int            `yaml:"gpu,omitempty"`
	Ports    map[string]int `yaml:"ports,omitempty"`
	Other    map[string]any `yaml:",inline"`
}

// NamedTaskRole pairs a task role's mapping key with its spec.
type NamedTaskRole struct {
	Name string
	Spec TaskRoleSpec
}

// TaskRoleList keeps task roles in document order. The protocol stores them
// as a YAML mapping, and "the first task role" is defined by that mapping's
// insertion order, so a plain Go map would lose the one property the
// TensorBoard injection depends on.
type TaskRoleList []*NamedTaskRole

func (l *TaskRoleList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("taskRoles: expected a mapping, got %s", value.Tag)
	}
	roles := make(TaskRoleList, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		role := &NamedTaskRole{Name: value.Content[i].Value}
		if err := value.Content[i+1].Decode(&role.Spec); err != nil {
			return fmt.Errorf("taskRoles: decoding role %q: %w", role.Name, err)
		}
		roles = append(roles, role)
	}
	*l = roles
	return nil
}

func (l TaskRoleList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, role := range l {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: role.Name}
		spec := &yaml.Node{}
		if err := spec.Encode(role.Spec); err != nil {
			return nil, fmt.Errorf("taskRoles: encoding role %q: %w", role.Name, err)
		}
		node.Content = append(node.Content, key, spec)
	}
	return node, nil
}

// Get returns the named role, or nil.
func (l TaskRoleList) Get(name string) *NamedTaskRole {
	for _, role := range l {
		if role.Name == name {
			return role
		}
	}
	return nil
}

// SecretStore is either a name->value mapping or, when the platform has
// scrubbed the block from a stored config, the literal redaction marker.
// Redaction is whole-block only: a marker appearing as an individual
// secret's value is treated as a normal value.
type SecretStore struct {
	Redacted bool
	Values   map[string]any
}

func (s *SecretStore) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var scalar string
		if err := value.Decode(&scalar); err != nil {
			return err
		}
		if scalar != RedactedSecretsMarker {
			return fmt.Errorf("secrets: expected a mapping or %q, got %q", RedactedSecretsMarker, scalar)
		}
		s.Redacted = true
		s.Values = nil
		return nil
	}
	s.Redacted = false
	return value.Decode(&s.Values)
}

func (s SecretStore) MarshalYAML() (any, error) {
	if s.Redacted {
		return RedactedSecretsMarker, nil
	}
	return s.Values, nil
}

func (s SecretStore) IsZero() bool {
	return !s.Redacted && len(s.Values) == 0
}

// ParseJobProtocol decodes a YAML job specification.
func ParseJobProtocol(data []byte) (*JobProtocol, error) {
	var protocol JobProtocol
	if err := yaml.Unmarshal(data, &protocol); err != nil {
		return nil, err
	}
	return &protocol, nil
}

func (p *JobProtocol) ToYAML() (string, error) {
	data, err := yaml.Marshal(p)
	return string(data), err
}

// Clone deep-copies the document via a YAML round-trip so read-only callers
// can strip and decompose without touching the caller's instance.
func (p *JobProtocol) Clone() (*JobProtocol, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, err
	}
	return ParseJobProtocol(data)
}
