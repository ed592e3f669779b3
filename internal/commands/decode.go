package commands

import (
	"errors"
	"fmt"
	"log"

	"github.com/pivotal-cf/jhanda"
)

//counterfeiter:generate -o ./fakes/key_decoder.go --fake-name KeyDecoder . KeyDecoder
type KeyDecoder interface {
	Decode(encoded string) (string, error)
}

const ErrMissingEncodedValue = `missing required flag "--value" (or set FIREBASE_SERVICE_ACCOUNT)`

type Decode struct {
	outLogger *log.Logger
	decoder   KeyDecoder

	Options struct {
		Value string `short:"V" long:"value" env:"FIREBASE_SERVICE_ACCOUNT" description:"base64 encoded service account key"`
	}
}

func NewDecode(outLogger *log.Logger, decoder KeyDecoder) Decode {
	return Decode{
		outLogger: outLogger,
		decoder:   decoder,
	}
}

func (d Decode) Execute(args []string) error {
	_, err := jhanda.Parse(&d.Options, args)
	if err != nil {
		return err
	}

	if d.Options.Value == "" {
		return errors.New(ErrMissingEncodedValue)
	}

	decoded, err := d.decoder.Decode(d.Options.Value)
	if err != nil {
		d.outLogger.Printf("An error occurred: %s\n", err)
		return fmt.Errorf("%w: %w", ErrReported, err)
	}

	d.outLogger.Println("Decoded Key:")
	d.outLogger.Print(decoded)

	return nil
}

func (d Decode) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command decodes a base64 encoded service account key, as read from FIREBASE_SERVICE_ACCOUNT, and prints the key file contents.",
		ShortDescription: "decodes a base64 encoded service account key",
		Flags:            d.Options,
	}
}
