// Command gzipcli compresses and decompresses single gzip streams using
// this module's own DEFLATE/gzip implementation rather than the standard
// library's compress/gzip.
package main

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/tociyuki/godeflate/gzipfmt"
)

type commonFlags struct {
	output      string
	progressBar bool
}

var errLog = log.New(os.Stderr, "", 0)

func main() {
	root := &cobra.Command{
		Use:   "gzipcli",
		Short: "compress and decompress gzip streams with a from-scratch DEFLATE engine",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.AddCommand(newGzipCommand())
	root.AddCommand(newGunzipCommand())
	if err := root.Execute(); err != nil {
		errLog.Printf("gzipcli: %v", err)
		os.Exit(1)
	}
}

func newGzipCommand() *cobra.Command {
	cl := &commonFlags{}
	cmd := &cobra.Command{
		Use:   "gzip [file]",
		Short: "compress a file, or stdin, to gzip",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGzip(cl, args)
		},
	}
	registerCommonFlags(cmd, cl)
	return cmd
}

func newGunzipCommand() *cobra.Command {
	cl := &commonFlags{}
	cmd := &cobra.Command{
		Use:   "gunzip [file]",
		Short: "decompress a gzip file, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGunzip(cl, args)
		},
	}
	registerCommonFlags(cmd, cl)
	return cmd
}

func registerCommonFlags(cmd *cobra.Command, cl *commonFlags) {
	cmd.Flags().StringVarP(&cl.output, "output", "o", "", "output file, omit for stdout")
	cmd.Flags().BoolVar(&cl.progressBar, "progress", true, "display a progress bar")
}

func openInput(args []string) (io.Reader, int64, func() error, error) {
	if len(args) == 0 {
		return os.Stdin, -1, func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, -1, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, -1, nil, err
	}
	return f, info.Size(), f.Close, nil
}

func openOutput(name string) (io.Writer, func() error, error) {
	if name == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// progressSetup starts a progress bar goroutine when requested and the
// output isn't a bare interactive terminal stream (the same condition
// cmd/pbzip2 uses: always show it when writing to a file, only show it on
// stdout when stdout isn't itself the terminal a human is watching
// scroll). It returns the channel to pass to gzipfmt.WithProgress (nil if
// no bar is wanted) and a cleanup func to call once the engine is done.
func progressSetup(cl *commonFlags, size int64) (chan gzipfmt.Progress, func()) {
	isTTY := terminal.IsTerminal(int(os.Stdout.Fd()))
	if !cl.progressBar || (cl.output == "" && isTTY) {
		return nil, func() {}
	}
	ch := make(chan gzipfmt.Progress, 8)
	barWr := os.Stdout
	if !isTTY {
		barWr = os.Stderr
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runProgressBar(barWr, ch, size)
	}()
	return ch, func() {
		close(ch)
		wg.Wait()
	}
}

func runGzip(cl *commonFlags, args []string) error {
	in, size, closeIn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cl.output)
	if err != nil {
		return err
	}

	progressCh, done := progressSetup(cl, size)
	var w *gzipfmt.Writer
	if progressCh != nil {
		w = gzipfmt.NewWriter(out, gzipfmt.WithProgress(progressCh))
	} else {
		w = gzipfmt.NewWriter(out)
	}

	_, err = w.CompressFrom(in)
	done()
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}

func runGunzip(cl *commonFlags, args []string) error {
	in, size, closeIn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cl.output)
	if err != nil {
		return err
	}

	progressCh, done := progressSetup(cl, size)
	var r *gzipfmt.Reader
	if progressCh != nil {
		r = gzipfmt.NewReader(in, gzipfmt.WithProgress(progressCh))
	} else {
		r = gzipfmt.NewReader(in)
	}

	_, err = r.DecompressInto(out)
	done()
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}
