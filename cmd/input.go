package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/openpai-contrib/jobsubmit/pkg"
)

var protocolFile string

func readProtocolInput() (*pkg.JobProtocol, error) {
	var err error
	var input []byte
	switch protocolFile {
	case "":
		return nil, fmt.Errorf("please specify a job protocol file")
	case "-":
		if isStdInFromTerminal() {
			fmt.Println("Reading input directly from command line... Press CTRL+D to stop typing")
		}
		buf := bytes.Buffer{}
		_, err = buf.ReadFrom(os.Stdin)
		input = buf.Bytes()
	default:
		if protocolFile == "." {
			protocolFile = "./job.yaml"
		}
		input, err = os.ReadFile(protocolFile)
	}
	if err != nil {
		return nil, err
	}
	return pkg.ParseJobProtocol(input)
}

func isStdInFromTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}
