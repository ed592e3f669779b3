package acceptance_test

import (
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("help", func() {
	DescribeTable("prints the global usage",
		func(args []string) {
			command := exec.Command(pathToMain, args...)
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("Usage: encode-key \\[options\\] <command> \\[<args>\\]"))
			Expect(session.Out).To(gbytes.Say("Key Commands:"))
			Expect(session.Out).To(gbytes.Say("decode"))
			Expect(session.Out).To(gbytes.Say("encode"))
		},
		Entry("with no arguments", []string{}),
		Entry("with the help command", []string{"help"}),
		Entry("with the --help flag", []string{"--help"}),
	)

	It("prints usage for a single command", func() {
		command := exec.Command(pathToMain, "help", "decode")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say("encode-key decode"))
		Expect(session.Out).To(gbytes.Say("--value, -V"))
	})

	Context("when the command is unknown", func() {
		It("exits 1", func() {
			command := exec.Command(pathToMain, "bake")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("bake"))
		})
	})
})
