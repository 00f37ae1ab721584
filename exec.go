package seamcarve

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/seamcarve/seamcarve/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently processed files.
const maxWorkers = 20

// SupportedExtensions lists the file extensions accepted as source and destination.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// Ops describes the source and destination of an execution.
type Ops struct {
	Src, Dst, PipeName string
	Workers            int

	// Interrupt, when set, runs before the process exits on CTRL-C.
	Interrupt func()
}

// result holds the outcome of resizing a single file.
type result struct {
	path string
	err  error
}

// Execute resizes the source described by op. The source can be a regular
// file, a pipe (op.PipeName) or a directory whose supported images are
// resized concurrently by op.Workers workers, each running its own
// sequential carver.
func (p *Processor) Execute(op *Ops) error {
	var (
		fs  os.FileInfo
		err error
	)
	if op.Src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(op.Src)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load the source image")
	}

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		if op.Dst == "" {
			op.Dst = strings.TrimSuffix(op.Src, string(filepath.Separator)) + utils.ResizedSuffix
		}
		if err := os.MkdirAll(op.Dst, 0755); err != nil {
			return errors.Wrap(err, "unable to create the destination directory")
		}
		if op.Workers <= 0 || op.Workers > maxWorkers {
			op.Workers = runtime.NumCPU()
		}

		ch := make(chan result)
		done := make(chan struct{})
		defer close(done)

		paths, errc := walkDir(done, op.Src, op.Dst, SupportedExtensions)

		var wg sync.WaitGroup
		wg.Add(op.Workers)
		for i := 0; i < op.Workers; i++ {
			go func() {
				defer wg.Done()
				op.consumer(*p, ch, done, paths)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		var failed int
		for res := range ch {
			if res.err != nil {
				failed++
			}
			op.printOpStatus(res.path, res.err)
		}
		if err := <-errc; err != nil {
			return errors.Wrap(err, "failed to walk the source directory")
		}
		if failed > 0 {
			return fmt.Errorf("%d image(s) could not be resized", failed)
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0 || mode&os.ModeCharDevice != 0:
		if op.Dst == "" {
			if op.Src == op.PipeName {
				op.Dst = op.PipeName
			} else {
				op.Dst = utils.ResizedPath(op.Src)
			}
		}
		ext := filepath.Ext(op.Dst)
		if op.Dst != op.PipeName && !utils.IsValidExtension(ext, SupportedExtensions) {
			return fmt.Errorf("%v file type not supported", ext)
		}

		err := op.process(p, op.Src, op.Dst)
		op.printOpStatus(op.Dst, err)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("%s is neither a file, a pipe nor a directory", op.Src)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
	return nil
}

// consumer resizes the files received on the paths channel. Every worker
// works on its own copy of the processor.
func (op *Ops) consumer(
	p Processor,
	res chan<- result,
	done <-chan struct{},
	paths <-chan string,
) {
	// Progress bars of concurrent workers would interleave.
	p.Progress = nil

	for src := range paths {
		rel, err := filepath.Rel(op.Src, src)
		if err != nil {
			rel = filepath.Base(src)
		}
		dst := filepath.Join(op.Dst, rel)
		if p.EnergyPath != "" {
			p.EnergyPath = energyPathFor(dst)
		}

		if err = os.MkdirAll(filepath.Dir(dst), 0755); err == nil {
			err = op.process(&p, src, dst)
		}

		select {
		case <-done:
			return
		case res <- result{path: src, err: err}:
		}
	}
}

// energyPathFor names the energy map written next to a batch output.
func energyPathFor(dst string) string {
	ext := filepath.Ext(dst)
	return strings.TrimSuffix(dst, ext) + "_energy.png"
}

// process resizes a single image from in to out. On failure the
// destination file is removed.
func (op *Ops) process(p *Processor, in, out string) error {
	src, dst, err := op.pathToFile(in, out)
	if err != nil {
		return err
	}

	// Capture CTRL-C: restore the cursor and drop the incomplete output.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-signalChan:
			if op.Interrupt != nil {
				op.Interrupt()
			}
			if f, ok := dst.(*os.File); ok && f != os.Stdout {
				os.Remove(f.Name())
			}
			os.Exit(1)
		case <-stop:
		}
	}()

	defer func() {
		if f, ok := src.(*os.File); ok && f != os.Stdin {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	err = p.Process(src, dst)

	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "could not close the destination file")
		}
		if err != nil {
			os.Remove(f.Name())
		}
	}
	return err
}

// pathToFile converts the source and destination paths to readable and writable files.
func (op *Ops) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
	)

	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		fs, err := os.Stat(in)
		if err != nil {
			return nil, nil, errors.Wrap(err, "unable to read the source file")
		}
		// Sniffing consumes the head of a named pipe, so only regular
		// files are checked up front. The decoder rejects the rest.
		if fs.Mode().IsRegular() {
			ctype, err := utils.DetectContentType(in)
			if err != nil {
				return nil, nil, errors.Wrap(err, "unable to read the source file")
			}
			if !strings.Contains(ctype, "image") {
				return nil, nil, fmt.Errorf("%s is not an image file (%s)", in, ctype)
			}
		}
		f, err := os.Open(in)
		if err != nil {
			return nil, nil, errors.Wrap(err, "unable to open the source file")
		}
		src = f
	}

	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if f, ok := src.(*os.File); ok && f != os.Stdin {
				f.Close()
			}
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			if sf, ok := src.(*os.File); ok && sf != os.Stdin {
				sf.Close()
			}
			return nil, nil, errors.Wrap(err, "unable to create the destination file")
		}
		dst = f
	}
	return src, dst, nil
}

// printOpStatus displays the outcome of resizing a single file.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText(fmt.Sprintf("Error resizing %s:", filepath.Base(fname)), utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(os.Stderr, "The image has been saved as: %s\n",
			utils.DecorateText(fname, utils.SuccessMessage),
		)
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each supported image file to
// the returned channel. The skip directory, usually the destination, is
// not descended into. It finishes when the done channel is closed.
func walkDir(
	done <-chan struct{},
	src, skip string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if f.IsDir() && skip != "" && path != src && sameDir(path, skip) {
				return filepath.SkipDir
			}
			if !f.Mode().IsRegular() || !utils.IsValidExtension(filepath.Ext(f.Name()), srcExts) {
				return nil
			}
			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// sameDir reports whether both paths name the same directory.
func sameDir(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}
