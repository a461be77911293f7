// Package csvcodec reads and writes the line-oriented store file.
//
// The file starts with a fixed header, holds one comma separated line per
// item, then a blank line and a final line listing history IDs oldest first.
// Fields are not quoted or escaped.
package csvcodec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/tracker"
)

// Header is the first line of every store file.
const Header = "id,type,name,status,description,start,duration,epic"

const (
	sep        = ","
	baseFields = 7
	subFields  = 8
)

// Encode writes the full store state to w.
func Encode(w io.Writer, m *tracker.Manager) error {
	snap := m.Snapshot()
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, Header)
	for _, task := range snap.Tasks {
		if err := writeItem(bw, task, task.Status, ""); err != nil {
			return err
		}
	}
	for _, sub := range snap.SubTasks {
		if err := writeItem(bw, sub, sub.Status, strconv.Itoa(sub.EpicID)); err != nil {
			return err
		}
	}
	for _, epic := range snap.Epics {
		status, _ := m.EpicStatus(epic.ID)
		if err := writeItem(bw, epic, status, ""); err != nil {
			return err
		}
	}

	history := make([]string, len(snap.History))
	for i, id := range snap.History {
		history[i] = strconv.Itoa(id)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, strings.Join(history, sep))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

func writeItem(w io.Writer, item domain.Item, status domain.Status, epic string) error {
	if strings.ContainsAny(item.Title(), ",\r\n") || strings.ContainsAny(item.Summary(), ",\r\n") {
		return fmt.Errorf("item %d: %w", item.ItemID(), domain.ErrSeparator)
	}
	fields := []string{
		strconv.Itoa(item.ItemID()),
		string(item.Kind()),
		item.Title(),
		string(status),
		item.Summary(),
		domain.FormatDateTime(item.ScheduledStart()),
		domain.FormatPeriod(item.ScheduledDuration()),
	}
	if epic != "" {
		fields = append(fields, epic)
	}
	_, err := fmt.Fprintln(w, strings.Join(fields, sep))
	return err
}

// Decode reads a store file into a snapshot. A missing or wrong header is a
// format error. Malformed item lines and history IDs are skipped and
// reported to logger, which may be nil.
func Decode(r io.Reader, logger domain.Logger) (tracker.Snapshot, error) {
	d := decoder{
		logger: logger,
		seen:   make(map[int]bool),
		snap:   tracker.Snapshot{Frames: make(map[int]tracker.Frame)},
	}
	if err := d.run(r); err != nil {
		return tracker.Snapshot{}, err
	}
	return d.snap, nil
}

// Load decodes a store file and restores a store from it.
func Load(r io.Reader, logger domain.Logger, opts ...tracker.Option) (*tracker.Manager, error) {
	snap, err := Decode(r, logger)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		opts = append([]tracker.Option{tracker.WithLogger(logger)}, opts...)
	}
	return tracker.Restore(snap, opts...), nil
}

type decoder struct {
	logger domain.Logger
	seen   map[int]bool
	snap   tracker.Snapshot
}

func (d *decoder) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrFormat, err)
		}
		return domain.ErrEmptyFile
	}
	if header := trimLine(sc.Text()); header != Header {
		return fmt.Errorf("%w: %q", domain.ErrInvalidHeader, header)
	}

	lineNo := 1
	separated := false
	historyRead := false
	for sc.Scan() {
		lineNo++
		line := trimLine(sc.Text())
		switch {
		case !separated && line == "":
			separated = true
		case !separated:
			d.item(lineNo, line)
		case line == "":
		case !historyRead:
			d.history(lineNo, line)
			historyRead = true
		default:
			d.warn(0, fmt.Sprintf("line %d: trailing content ignored", lineNo))
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFormat, err)
	}
	return nil
}

func (d *decoder) item(lineNo int, line string) {
	fields := strings.Split(line, sep)
	if len(fields) < baseFields {
		d.warn(0, fmt.Sprintf("line %d: expected at least %d fields, got %d", lineNo, baseFields, len(fields)))
		return
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil || id <= 0 {
		d.warn(0, fmt.Sprintf("line %d: invalid id %q", lineNo, fields[0]))
		return
	}
	kind, err := domain.ParseKind(fields[1])
	if err != nil {
		d.warn(id, fmt.Sprintf("line %d: %v", lineNo, err))
		return
	}
	want := baseFields
	if kind == domain.KindSubTask {
		want = subFields
	}
	if len(fields) != want {
		d.warn(id, fmt.Sprintf("line %d: %s line needs %d fields, got %d", lineNo, kind.Display(), want, len(fields)))
		return
	}
	status, err := domain.ParseStatus(fields[3])
	if err != nil {
		d.warn(id, fmt.Sprintf("line %d: %v", lineNo, err))
		return
	}
	start, err := domain.ParseDateTime(fields[5])
	if err != nil {
		d.warn(id, fmt.Sprintf("line %d: %v", lineNo, err))
		return
	}
	duration, err := domain.ParsePeriod(fields[6])
	if err != nil {
		d.warn(id, fmt.Sprintf("line %d: %v", lineNo, err))
		return
	}
	if d.seen[id] {
		d.warn(id, fmt.Sprintf("line %d: duplicate id %d ignored", lineNo, id))
		return
	}

	name, description := fields[2], fields[4]
	switch kind {
	case domain.KindTask:
		task := domain.NewTask(id, name, description).Schedule(start, duration)
		task.Status = status
		d.snap.Tasks = append(d.snap.Tasks, task)
	case domain.KindSubTask:
		epicID, err := strconv.Atoi(fields[7])
		if err != nil {
			d.warn(id, fmt.Sprintf("line %d: invalid epic id %q", lineNo, fields[7]))
			return
		}
		sub := domain.NewSubTask(id, epicID, name, description).Schedule(start, duration)
		sub.Status = status
		d.snap.SubTasks = append(d.snap.SubTasks, sub)
	case domain.KindEpic:
		d.snap.Epics = append(d.snap.Epics, domain.NewEpic(id, name, description))
		if !domain.IsUnscheduled(start) || duration != 0 {
			d.snap.Frames[id] = tracker.Frame{Start: start, Duration: duration}
		}
	}
	d.seen[id] = true
}

func (d *decoder) history(lineNo int, line string) {
	for _, raw := range strings.Split(line, sep) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			d.warn(0, fmt.Sprintf("line %d: invalid history id %q", lineNo, raw))
			continue
		}
		d.snap.History = append(d.snap.History, id)
	}
}

func (d *decoder) warn(id int, msg string) {
	if d.logger != nil {
		d.logger.Warn(id, "load", msg)
	}
}

func trimLine(s string) string {
	return strings.TrimSuffix(s, "\r")
}
