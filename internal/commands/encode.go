package commands

import (
	"fmt"
	"log"

	"github.com/pivotal-cf/jhanda"

	"github.com/gscube/encode-key/internal/keyfile"
)

//counterfeiter:generate -o ./fakes/key_encoder.go --fake-name KeyEncoder . KeyEncoder
type KeyEncoder interface {
	Encode(path string) (string, error)
}

type Encode struct {
	outLogger *log.Logger
	encoder   KeyEncoder

	Options struct {
		KeyFile string `short:"k" long:"key-file" env:"SERVICE_ACCOUNT_KEY_FILE" default:"service-account.json" description:"path to the service account key file"`
	}
}

func NewEncode(outLogger *log.Logger, encoder KeyEncoder) Encode {
	return Encode{
		outLogger: outLogger,
		encoder:   encoder,
	}
}

func (e Encode) Execute(args []string) error {
	_, err := jhanda.Parse(&e.Options, args)
	if err != nil {
		return err
	}

	encoded, err := e.encoder.Encode(e.Options.KeyFile)
	if err != nil {
		if keyfile.IsNotFound(err) {
			e.outLogger.Printf("Error: File not found at %s\n", e.Options.KeyFile)
		} else {
			e.outLogger.Printf("An error occurred: %s\n", err)
		}
		return fmt.Errorf("%w: %w", ErrReported, err)
	}

	e.outLogger.Println("Base64 Encoded Key:")
	e.outLogger.Println(encoded)

	return nil
}

func (e Encode) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command reads a service account key file and prints its contents base64 encoded, ready to be stored in an environment variable.",
		ShortDescription: "base64 encodes a service account key file",
		Flags:            e.Options,
	}
}
