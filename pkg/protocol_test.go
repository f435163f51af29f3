package pkg

import (
	"testing"

	"github.com/rocktavious/autopilot/v2023"
)

var sampleProtocolYAML = []byte(`
protocolVersion: "2"
name: mnist_example
type: job
jobRetryCount: 1
defaults:
  virtualCluster: vc1
parameters:
  epochs: 10
  model: cnn
secrets:
  registryPassword: hunter2
taskRoles:
  worker:
    instances: 2
    dockerImage: pytorch/pytorch
    resourcePerInstance:
      cpu: 4
      memoryMB: 8192
      gpu: 1
      ports:
        ssh: 1
    commands:
      - python train.py
  ps:
    instances: 1
    dockerImage: pytorch/pytorch
    commands:
      - python ps.py
extras:
  tensorBoard:
    randomStr: ab12cd34
    logDirectories:
      default: /mnt/tensorboard
  submitFrom: web-portal
`)

func TestParseJobProtocol(t *testing.T) {
	// Act
	protocol, err := ParseJobProtocol(sampleProtocolYAML)
	// Assert
	autopilot.Ok(t, err)
	autopilot.Equals(t, "mnist_example", protocol.Name)
	autopilot.Equals(t, "vc1", protocol.Defaults.VirtualCluster)
	autopilot.Equals(t, 2, len(protocol.TaskRoles))
	autopilot.Equals(t, "worker", protocol.TaskRoles[0].Name)
	autopilot.Equals(t, "ps", protocol.TaskRoles[1].Name)
	autopilot.Equals(t, 1, protocol.TaskRoles[0].Spec.Resources.Ports["ssh"])
	autopilot.Equals(t, false, protocol.Secrets.Redacted)
	autopilot.Equals(t, "hunter2", protocol.Secrets.Values["registryPassword"])
	autopilot.Equals(t, "ab12cd34", protocol.Extras.TensorBoard.RandomStr)
	autopilot.Equals(t, "web-portal", protocol.Extras.Other["submitFrom"])
}

func TestParseJobProtocolRedactedSecrets(t *testing.T) {
	// Arrange
	input := []byte("name: job1\nsecrets: \"******\"\n")
	// Act
	protocol, err := ParseJobProtocol(input)
	// Assert
	autopilot.Ok(t, err)
	autopilot.Equals(t, true, protocol.Secrets.Redacted)
	autopilot.Equals(t, 0, len(protocol.Secrets.Values))
}

func TestParseJobProtocolRejectsOtherScalarSecrets(t *testing.T) {
	// Act
	_, err := ParseJobProtocol([]byte("secrets: oops\n"))
	// Assert
	autopilot.Assert(t, err != nil, "a scalar secrets block that is not the redaction marker must fail to parse")
}

func TestProtocolRoundTripPreservesRoleOrder(t *testing.T) {
	// Arrange
	protocol, err := ParseJobProtocol(sampleProtocolYAML)
	autopilot.Ok(t, err)
	// Act
	serialized, err := protocol.ToYAML()
	autopilot.Ok(t, err)
	reparsed, err := ParseJobProtocol([]byte(serialized))
	// Assert
	autopilot.Ok(t, err)
	autopilot.Equals(t, "worker", reparsed.TaskRoles[0].Name)
	autopilot.Equals(t, "ps", reparsed.TaskRoles[1].Name)
	autopilot.Equals(t, protocol.TaskRoles[0].Spec.Commands, reparsed.TaskRoles[0].Spec.Commands)
}

func TestRedactedSecretsRoundTrip(t *testing.T) {
	// Arrange
	protocol, err := ParseJobProtocol([]byte("name: job1\nsecrets: \"******\"\n"))
	autopilot.Ok(t, err)
	// Act
	serialized, err := protocol.ToYAML()
	autopilot.Ok(t, err)
	reparsed, err := ParseJobProtocol([]byte(serialized))
	// Assert
	autopilot.Ok(t, err)
	autopilot.Equals(t, true, reparsed.Secrets.Redacted)
}

func TestCloneIsIndependent(t *testing.T) {
	// Arrange
	protocol, err := ParseJobProtocol(sampleProtocolYAML)
	autopilot.Ok(t, err)
	// Act
	clone, err := protocol.Clone()
	autopilot.Ok(t, err)
	clone.TaskRoles[0].Spec.Commands = append(clone.TaskRoles[0].Spec.Commands, "echo extra")
	clone.Parameters["epochs"] = 99
	// Assert
	autopilot.Equals(t, []string{"python train.py"}, protocol.TaskRoles[0].Spec.Commands)
	autopilot.Equals(t, 10, protocol.Parameters["epochs"])
}

func TestTaskRoleListGet(t *testing.T) {
	// Arrange
	protocol, err := ParseJobProtocol(sampleProtocolYAML)
	autopilot.Ok(t, err)
	// Act
	worker := protocol.TaskRoles.Get("worker")
	missing := protocol.TaskRoles.Get("nope")
	// Assert
	autopilot.Equals(t, 2, worker.Spec.Instances)
	autopilot.Assert(t, missing == nil, "missing roles return nil")
}
