// Package console implements operator interaction on a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bleprofile/internal/domain"
)

// Prompter lists devices on Out and reads a 1-based choice from In.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// pending holds a read abandoned by a cancelled Select; the next Select
	// consumes its line instead of starting a second reader.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Select prints the numbered device list and reads one line. Input that is
// not a number in [1, len(devices)], including end of input, yields
// domain.ErrSelectionInvalid. Cancelling ctx abandons the read.
func (p *Prompter) Select(ctx context.Context, devices []domain.DiscoveredDevice) (domain.DiscoveredDevice, error) {
	if len(devices) == 0 {
		return domain.DiscoveredDevice{}, domain.ErrDiscoveryEmpty
	}

	fmt.Fprintln(p.out, "\n--- Select the device to create a profile for ---")
	for i, d := range devices {
		fmt.Fprintf(p.out, "  %2d) %s  [%s]  %d dBm\n", i+1, d.Name, d.AddressHex(), d.RSSI)
	}
	fmt.Fprintf(p.out, "Enter a number (1-%d): ", len(devices))

	line, err := p.readLine(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		fmt.Fprintln(p.out)
		return domain.DiscoveredDevice{}, ctxErr
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return domain.DiscoveredDevice{}, fmt.Errorf("read selection: %w", err)
	}

	choice, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || choice < 1 || choice > len(devices) {
		return domain.DiscoveredDevice{}, fmt.Errorf("%w: %q", domain.ErrSelectionInvalid, strings.TrimSpace(line))
	}
	return devices[choice-1], nil
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case r := <-p.pending:
		p.pending = nil
		return r.line, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Compile-time assertion that Prompter implements domain.DeviceSelector.
var _ domain.DeviceSelector = (*Prompter)(nil)
