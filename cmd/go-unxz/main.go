package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/rsenn/xz"
	"github.com/rsenn/xz/internal/routinemanager"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func newCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:              "go-unxz [flags] [files...]",
		Short:            "Decompress .xz and .lzma files",
		PersistentPreRun: o.logging,
		RunE:             o.run,
		SilenceUsage:     true,
		SilenceErrors:    true,
	}
	cmd.Flags().CountVarP(&o.verbosity, "verbose", "v", "how verbose to be, can use multiple")
	cmd.Flags().BoolVarP(&o.stdout, "stdout", "c", false, "write to standard output and keep input files")
	cmd.Flags().BoolVarP(&o.keep, "keep", "k", false, "keep input files")
	cmd.Flags().BoolVarP(&o.force, "force", "f", false, "overwrite existing output files")
	cmd.Flags().BoolVar(&o.singleStream, "single-stream", false, "stop after the first stream and ignore what follows")
	cmd.Flags().StringVarP(&o.memLimit, "memlimit", "M", "0", "dictionary memory limit, ie 64MiB or max (0 for the default)")
	cmd.Flags().BoolVar(&o.any, "any", false, "also accept gzip, zstd and lz4 input")
	cmd.Flags().IntVarP(&o.threads, "threads", "T", 1, "number of files to decompress at once")
	cmd.Flags().BoolVar(&o.check, "check", false, "print the integrity check of each file")
	return cmd
}

func main() {
	var opts options
	err := newCommand(&opts).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *options) logging(cc *cobra.Command, args []string) {
	var (
		log *zap.Logger
		err error
	)
	switch o.verbosity {
	case 0:
		log = zap.NewNop()
	case 1:
		log, err = zap.NewProduction()
	default: // 2+
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintln(cc.ErrOrStderr(), "unable to set up logging:", err)
		log = zap.NewNop()
	}
	xz.SetLogger(log)
}

func (o *options) run(cc *cobra.Command, args []string) error {
	defer xz.Logger().Sync()
	cfg, err := o.config()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		check, err := decode(cc.OutOrStdout(), cc.InOrStdin(), cfg, o.any)
		o.report(cc, "(stdin)", check)
		return err
	}
	threads := o.threads
	if o.stdout {
		//Keep file contents in argument order.
		threads = 1
	}
	var (
		mgr  = routinemanager.NewManager(threads)
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	for _, path := range args {
		slot := mgr.Lock()
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer mgr.Unlock(slot)
			err := o.decompressFile(cc, path, cfg)
			if err != nil {
				xz.Logger().Warn("decompression failed", zap.String("file", path), zap.Error(err))
				err = fmt.Errorf("%s: %w", path, err)
			}
			mu.Lock()
			errs = multierr.Append(errs, err)
			mu.Unlock()
		}(path)
	}
	wg.Wait()
	return errs
}
