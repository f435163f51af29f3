package pkg

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// TensorBoardExtras is the extras record driving TensorBoard injection.
// Exactly these two fields; edited copies are checked by
// IsValidUpdatedTensorBoardExtras before being written back.
type TensorBoardExtras struct {
	RandomStr      string            `yaml:"randomStr" mapstructure:"randomStr"`
	LogDirectories map[string]string `yaml:"logDirectories" mapstructure:"logDirectories"`
}

const tensorBoardRandomStrLength = 8

const lowerAlphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateDefaultTensorBoardExtras returns a fresh record with a random
// identifier and the single default log directory.
func GenerateDefaultTensorBoardExtras() *TensorBoardExtras {
	return &TensorBoardExtras{
		RandomStr: randomLowerAlphanumeric(tensorBoardRandomStrLength),
		LogDirectories: map[string]string{
			"default": DefaultTensorBoardLogDir,
		},
	}
}

func randomLowerAlphanumeric(length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = lowerAlphanumeric[rand.IntN(len(lowerAlphanumeric))]
	}
	return string(buf)
}

// IsValidUpdatedTensorBoardExtras reports whether a UI-edited copy of the
// extras record is acceptable: the identifier is preserved, logDirectories
// is still declared and non-empty, and no extra top-level fields were added.
func IsValidUpdatedTensorBoardExtras(original *TensorBoardExtras, updated map[string]any) bool {
	if original == nil || len(updated) != 2 {
		return false
	}
	var edited TensorBoardExtras
	var metadata mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &edited,
		Metadata: &metadata,
	})
	if err != nil {
		return false
	}
	if err := decoder.Decode(updated); err != nil {
		return false
	}
	if len(metadata.Unused) > 0 {
		return false
	}
	return edited.RandomStr == original.RandomStr && len(edited.LogDirectories) > 0
}

// TensorBoardPortName derives the port key registered on the first task role.
// The identifier makes it unique per document so resubmitting an edited copy
// of another job cannot collide.
func TensorBoardPortName(randomStr string) string {
	return "tensorboard_" + randomStr
}

// tensorBoardLaunchCommand starts the server backgrounded, reading every
// declared log directory and binding the port the runtime assigns to the
// generated port name. Directories are joined name:path, comma separated,
// in name order so the command is stable across round-trips.
func tensorBoardLaunchCommand(extras *TensorBoardExtras) string {
	names := make([]string, 0, len(extras.LogDirectories))
	for name := range extras.LogDirectories {
		names = append(names, name)
	}
	sort.Strings(names)
	logDirs := make([]string, 0, len(names))
	for _, name := range names {
		logDirs = append(logDirs, name+":"+extras.LogDirectories[name])
	}
	return fmt.Sprintf(
		"tensorboard --logdir=%s --port=$PAI_CONTAINER_HOST_%s_PORT_LIST &",
		strings.Join(logDirs, ","),
		TensorBoardPortName(extras.RandomStr),
	)
}
