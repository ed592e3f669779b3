package commands_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gscube/encode-key/internal/commands"
	"github.com/gscube/encode-key/internal/commands/fakes"
	"github.com/gscube/encode-key/internal/keyfile"
)

var _ = Describe("Decode", func() {
	var (
		output  strings.Builder
		decoder *fakes.KeyDecoder
		decode  commands.Decode
	)

	BeforeEach(func() {
		output.Reset()
		decoder = &fakes.KeyDecoder{}
		decoder.DecodeReturns(`{"a":1}`, nil)
		decode = commands.NewDecode(log.New(&output, "", 0), decoder)
	})

	It("prints a label followed by the decoded key", func() {
		err := decode.Execute([]string{"--value", "eyJhIjoxfQ=="})
		Expect(err).NotTo(HaveOccurred())

		Expect(decoder.DecodeCallCount()).To(Equal(1))
		Expect(decoder.DecodeArgsForCall(0)).To(Equal("eyJhIjoxfQ=="))
		Expect(output.String()).To(Equal("Decoded Key:\n{\"a\":1}\n"))
	})

	It("does not add a second newline to keys that end with one", func() {
		decoder.DecodeReturns("{}\n", nil)

		err := decode.Execute([]string{"-V", "e30K"})
		Expect(err).NotTo(HaveOccurred())
		Expect(output.String()).To(Equal("Decoded Key:\n{}\n"))
	})

	Context("when no value is given", func() {
		It("returns an error without decoding", func() {
			if _, set := os.LookupEnv("FIREBASE_SERVICE_ACCOUNT"); set {
				Skip("FIREBASE_SERVICE_ACCOUNT is set in this environment")
			}
			err := decode.Execute(nil)
			Expect(err).To(MatchError(commands.ErrMissingEncodedValue))
			Expect(decoder.DecodeCallCount()).To(Equal(0))
			Expect(output.String()).To(BeEmpty())
		})
	})

	Context("when decoding fails", func() {
		BeforeEach(func() {
			decoder.DecodeReturns("", &keyfile.Error{Kind: keyfile.OtherFailure, Err: fmt.Errorf("failed to decode base64: illegal base64 data at input byte 4")})
		})

		It("prints a generic message with the cause", func() {
			err := decode.Execute([]string{"--value", "not base64"})
			Expect(errors.Is(err, commands.ErrReported)).To(BeTrue())
			Expect(output.String()).To(Equal("An error occurred: failed to decode base64: illegal base64 data at input byte 4\n"))
		})
	})
})
