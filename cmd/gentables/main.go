// Command gentables generates code lookup table artifacts at build time.
//
// One artifact per invocation:
//
//	gentables --family gamma --read-bits 8 --max-value 256 --format go --out gamma_tables.go
//
// or the default set for every family at once:
//
//	gentables --all --format bin --compression zstd --out ./tables
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/bitcodec/format"
	"github.com/arloliu/bitcodec/tables"
)

type options struct {
	family      string
	zetaK       uint
	readBits    int
	maxValue    uint64
	outFormat   string
	compression string
	pkgName     string
	out         string
	all         bool
}

// defaultConfigs mirrors the historical per-family defaults: a byte-wide read
// window for every family, write coverage of 63 for unary (its codewords grow
// linearly) and 256 for the logarithmic families.
func defaultConfigs() []tables.Config {
	return []tables.Config{
		{Family: format.FamilyUnary, ReadBits: 8, MaxValue: 63},
		{Family: format.FamilyGamma, ReadBits: 8, MaxValue: 256},
		{Family: format.FamilyDelta, ReadBits: 8, MaxValue: 256},
		{Family: format.FamilyZeta, ZetaK: 3, ReadBits: 8, MaxValue: 256},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gentables:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "gentables",
		Short:         "Generate universal-code lookup table artifacts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.family, "family", "", "code family: unary, gamma, delta, or zeta")
	flags.UintVar(&opts.zetaK, "zeta-k", 3, "zeta shrinking parameter (zeta family only)")
	flags.IntVar(&opts.readBits, "read-bits", 8, "read-table window width in bits")
	flags.Uint64Var(&opts.maxValue, "max-value", 256, "largest value covered by write/length tables")
	flags.StringVar(&opts.outFormat, "format", "go", "artifact format: go or bin")
	flags.StringVar(&opts.compression, "compression", "none", "binary artifact compression: none, zstd, s2, or lz4")
	flags.StringVar(&opts.pkgName, "package", "", "package name for go artifacts (default <family>tables)")
	flags.StringVar(&opts.out, "out", "", "output file, or output directory with --all")
	flags.BoolVar(&opts.all, "all", false, "generate the default table set for every family")

	return cmd
}

func run(opts *options) error {
	if opts.outFormat != "go" && opts.outFormat != "bin" {
		return fmt.Errorf("unknown artifact format: %q", opts.outFormat)
	}
	if _, err := format.ParseCompressionType(opts.compression); err != nil {
		return err
	}

	if opts.all {
		return runAll(opts)
	}

	family, err := format.ParseCodeFamily(opts.family)
	if err != nil {
		return err
	}

	cfg := tables.Config{
		Family:   family,
		ReadBits: opts.readBits,
		MaxValue: opts.maxValue,
	}
	if family == format.FamilyZeta {
		cfg.ZetaK = opts.zetaK
	}

	tbl, err := tables.Build(cfg)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = artifactName(cfg, opts.outFormat)
	}

	return emit(tbl, out, opts)
}

// runAll builds every default configuration concurrently; each enumeration
// is independent, the artifacts are written one file per family afterwards.
func runAll(opts *options) error {
	cfgs := defaultConfigs()
	built, err := tables.BuildAll(cfgs)
	if err != nil {
		return err
	}

	dir := opts.out
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, tbl := range built {
		out := filepath.Join(dir, artifactName(tbl.Config, opts.outFormat))
		if err := emit(tbl, out, opts); err != nil {
			return err
		}
	}

	return nil
}

func emit(tbl *tables.Tables, out string, opts *options) error {
	var data []byte

	if opts.outFormat == "go" {
		pkg := opts.pkgName
		if pkg == "" || opts.all {
			pkg = strings.ToLower(tbl.Config.Family.String()) + "tables"
		}

		var sb strings.Builder
		if err := tables.WriteGoSource(&sb, tbl, pkg); err != nil {
			return err
		}
		data = []byte(sb.String())
	} else {
		compression, err := format.ParseCompressionType(opts.compression)
		if err != nil {
			return err
		}
		if data, err = tables.Marshal(tbl, compression); err != nil {
			return err
		}
	}

	if err := writeArtifact(out, data); err != nil {
		return err
	}

	fmt.Printf("wrote %s tables (readBits=%d maxValue=%d) to %s\n",
		tbl.Config.Family, tbl.Config.ReadBits, tbl.Config.MaxValue, out)

	return nil
}

// artifactName derives the conventional per-family artifact file name.
func artifactName(cfg tables.Config, outFormat string) string {
	name := strings.ToLower(cfg.Family.String()) + "_tables"
	if outFormat == "go" {
		return name + ".go"
	}

	return name + ".btb"
}

// writeArtifact writes data through a temp file and rename so a concurrent
// reader never observes a partial artifact.
func writeArtifact(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return err
	}

	return os.Rename(tmp.Name(), path)
}
