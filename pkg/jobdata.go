package pkg

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// MountConfig is one selectable team storage configuration.
type MountConfig struct {
	Name string `json:"name"`
}

// JobData supplies the storage mount state of the submission form: whether
// any data needs mounting, which configs the user selected, and the
// pre-commands that perform the mounts inside the container.
type JobData interface {
	ContainData() bool
	SelectedConfigs() []MountConfig
	GenerateDataCommands(ctx context.Context, user string, jobName string) ([]string, error)
}

// storageDetail is the rest-server's storage config document.
type storageDetail struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	MountPoint string `json:"mountPoint"`
	Data       struct {
		Server string `json:"server"`
		Path   string `json:"path"`
	} `json:"data"`
}

// StorageJobData resolves selected configs against the platform rest-server
// and emits mount pre-commands wrapped in the teamwise-data sentinels, so a
// later strip can take them back out.
type StorageJobData struct {
	client   *resty.Client
	logger   zerolog.Logger
	selected []MountConfig
}

func NewStorageJobData(restServerURL string, token string, logger zerolog.Logger, selected ...MountConfig) *StorageJobData {
	client := resty.New().
		SetBaseURL(restServerURL).
		SetAuthToken(token).
		SetHeader("Accept", "application/json")
	return &StorageJobData{
		client:   client,
		logger:   logger,
		selected: selected,
	}
}

func (d *StorageJobData) ContainData() bool {
	return len(d.selected) > 0
}

func (d *StorageJobData) SelectedConfigs() []MountConfig {
	return d.selected
}

func (d *StorageJobData) GenerateDataCommands(ctx context.Context, user string, jobName string) ([]string, error) {
	if !d.ContainData() {
		return nil, nil
	}
	commands := make([]string, 0, len(d.selected)*2)
	for _, config := range d.selected {
		var detail storageDetail
		resp, err := d.client.R().
			SetContext(ctx).
			SetResult(&detail).
			SetPathParam("name", config.Name).
			Get("/api/v2/storages/{name}")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("fetching storage config '%s': %s", config.Name, resp.Status())
		}
		d.logger.Debug().Msgf("Resolved storage config '%s' (%s)", detail.Name, detail.Type)
		commands = append(commands, mountCommands(detail)...)
	}
	return WrapSection(SectionTeamwiseData, commands...), nil
}

func mountCommands(detail storageDetail) []string {
	mountPoint := detail.MountPoint
	if mountPoint == "" {
		mountPoint = "/mnt/" + detail.Name
	}
	commands := []string{fmt.Sprintf("mkdir -p %s", mountPoint)}
	switch detail.Type {
	case "nfs":
		commands = append(commands, fmt.Sprintf("mount -t nfs4 %s:%s %s", detail.Data.Server, detail.Data.Path, mountPoint))
	case "samba":
		commands = append(commands, fmt.Sprintf("mount -t cifs //%s%s %s", detail.Data.Server, detail.Data.Path, mountPoint))
	default:
		// Unknown server types still get their mount point created so the
		// job's own commands can populate it.
	}
	return commands
}

// StaticJobData carries pre-computed commands. Used by tests and by the CLI
// when no rest-server is configured.
type StaticJobData struct {
	Commands []string
	Configs  []MountConfig
}

func NewStaticJobData(commands []string, selected ...MountConfig) *StaticJobData {
	return &StaticJobData{Commands: commands, Configs: selected}
}

func (d *StaticJobData) ContainData() bool {
	return len(d.Commands) > 0
}

func (d *StaticJobData) SelectedConfigs() []MountConfig {
	return d.Configs
}

func (d *StaticJobData) GenerateDataCommands(ctx context.Context, user string, jobName string) ([]string, error) {
	return d.Commands, nil
}
