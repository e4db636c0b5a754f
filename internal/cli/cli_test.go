package cli_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/knapsack/internal/cli"
)

var _ = Describe("Run", func() {
	var (
		dir            string
		stdout, stderr *bytes.Buffer
	)

	writeInput := func(name, body string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(body), 0o600)).To(Succeed())
		return path
	}

	run := func(args ...string) int {
		return cli.Run(args, stdout, stderr)
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
	})

	Context("with a well-formed instance", func() {
		It("prints the textbook optimum", func() {
			path := writeInput("textbook.txt", "50 3\n60 10\n100 20\n120 30\n")

			Expect(run(path)).To(Equal(cli.ExitOK))
			Expect(stdout.String()).To(Equal("Knapsack Value: 220\n"))
			Expect(stderr.String()).To(BeEmpty())
		})

		It("counts a zero-weight item at zero capacity", func() {
			path := writeInput("zero.txt", "0 1\n5 0\n")

			Expect(run(path)).To(Equal(cli.ExitOK))
			Expect(stdout.String()).To(Equal("Knapsack Value: 5\n"))
		})

		It("prints zero when nothing fits", func() {
			path := writeInput("heavy.txt", "5 1\n10 10\n")

			Expect(run(path)).To(Equal(cli.ExitOK))
			Expect(stdout.String()).To(Equal("Knapsack Value: 0\n"))
		})

		It("gives the same answer with the full table", func() {
			path := writeInput("textbook.txt", "50 3\n60 10\n100 20\n120 30\n")

			Expect(run("--memory-mode", "full-table", path)).To(Equal(cli.ExitOK))
			Expect(stdout.String()).To(Equal("Knapsack Value: 220\n"))
		})

		It("logs progress at debug level", func() {
			path := writeInput("textbook.txt", "50 3\n60 10\n100 20\n120 30\n")

			Expect(run("--log-level=debug", path)).To(Equal(cli.ExitOK))
			Expect(stderr.String()).To(ContainSubstring("instance loaded"))
			Expect(stderr.String()).To(ContainSubstring("solved"))
		})
	})

	Context("with bad arguments", func() {
		It("rejects zero arguments", func() {
			Expect(run()).To(Equal(cli.ExitUsage))
			Expect(stderr.String()).To(ContainSubstring("usage: knapsack"))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("rejects two arguments", func() {
			Expect(run("a.txt", "b.txt")).To(Equal(cli.ExitUsage))
			Expect(stderr.String()).To(ContainSubstring(cli.ErrInvalidArguments.Error()))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("rejects unknown flags", func() {
			Expect(run("--bogus", "a.txt")).To(Equal(cli.ExitUsage))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("rejects an unknown log level", func() {
			Expect(run("--log-level", "loud", "a.txt")).To(Equal(cli.ExitUsage))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("rejects an unknown memory mode", func() {
			path := writeInput("textbook.txt", "50 3\n60 10\n100 20\n120 30\n")

			Expect(run("--memory-mode", "sparse", path)).To(Equal(cli.ExitUsage))
			Expect(stdout.String()).To(BeEmpty())
		})

		It("prints usage for --help and succeeds", func() {
			Expect(run("--help")).To(Equal(cli.ExitOK))
			Expect(stderr.String()).To(ContainSubstring("--memory-mode"))
		})
	})

	Context("with a broken instance", func() {
		It("reports a count mismatch without a result line", func() {
			path := writeInput("short.txt", "3 3\n60 10\n100 20\n")

			Expect(run(path)).To(Equal(cli.ExitFailure))
			Expect(stdout.String()).NotTo(ContainSubstring("Knapsack Value"))
			Expect(stderr.String()).To(ContainSubstring("item count mismatch"))
		})

		It("reports a missing file", func() {
			Expect(run(filepath.Join(dir, "missing.txt"))).To(Equal(cli.ExitFailure))
			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(ContainSubstring("file unreadable"))
		})

		It("reports a malformed item line", func() {
			path := writeInput("bad.txt", "10 1\nten 1\n")

			Expect(run(path)).To(Equal(cli.ExitFailure))
			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(ContainSubstring("malformed item line"))
		})

		It("reports a capacity too large to allocate", func() {
			path := writeInput("huge.txt", "9223372036854775807 1\n5 1\n")

			Expect(run(path)).To(Equal(cli.ExitFailure))
			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(ContainSubstring("capacity too large"))
		})

		It("reports negative weights found by the solver", func() {
			path := writeInput("neg.txt", "10 1\n5 -1\n")

			Expect(run(path)).To(Equal(cli.ExitFailure))
			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(ContainSubstring("non-negative"))
		})
	})
})
