package pkg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rocktavious/autopilot/v2023"
	"github.com/rs/zerolog"
)

func TestStaticJobData(t *testing.T) {
	// Arrange
	empty := NewStaticJobData(nil)
	loaded := NewStaticJobData([]string{"mount a"}, MountConfig{Name: "data"})
	// Act
	commands, err := loaded.GenerateDataCommands(context.Background(), "alice", "job1")
	// Assert
	autopilot.Ok(t, err)
	autopilot.Equals(t, false, empty.ContainData())
	autopilot.Equals(t, true, loaded.ContainData())
	autopilot.Equals(t, []string{"mount a"}, commands)
	autopilot.Equals(t, []MountConfig{{Name: "data"}}, loaded.SelectedConfigs())
}

func TestStorageJobDataGenerateDataCommands(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		autopilot.Equals(t, "/api/v2/storages/team-data", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"team-data","type":"nfs","mountPoint":"/mnt/data","data":{"server":"10.0.0.1","path":"/share"}}`))
	}))
	defer server.Close()
	jobData := NewStorageJobData(server.URL, "token", zerolog.Nop(), MountConfig{Name: "team-data"})
	// Act
	commands, err := jobData.GenerateDataCommands(context.Background(), "alice", "job1")
	// Assert
	autopilot.Ok(t, err)
	autopilot.Equals(t, []string{
		teamwiseDataCmdStart,
		AutoGeneratedNotice,
		"mkdir -p /mnt/data",
		"mount -t nfs4 10.0.0.1:/share /mnt/data",
		teamwiseDataCmdEnd,
	}, commands)
}

func TestStorageJobDataServerError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()
	jobData := NewStorageJobData(server.URL, "token", zerolog.Nop(), MountConfig{Name: "missing"})
	// Act
	_, err := jobData.GenerateDataCommands(context.Background(), "alice", "job1")
	// Assert
	autopilot.Assert(t, err != nil, "a failed storage lookup surfaces an error")
}

func TestStorageJobDataNoSelection(t *testing.T) {
	// Arrange
	jobData := NewStorageJobData("http://unused", "", zerolog.Nop())
	// Act
	commands, err := jobData.GenerateDataCommands(context.Background(), "alice", "job1")
	// Assert
	autopilot.Ok(t, err)
	autopilot.Equals(t, false, jobData.ContainData())
	autopilot.Assert(t, commands == nil, "no selection yields no commands")
}

func TestMountCommandsUnknownType(t *testing.T) {
	// Arrange
	detail := storageDetail{Name: "blob", Type: "azureblob"}
	// Act
	commands := mountCommands(detail)
	// Assert - unknown server types still get their mount point
	autopilot.Equals(t, []string{"mkdir -p /mnt/blob"}, commands)
}
