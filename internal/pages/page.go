// Package pages holds the console's page controllers. A controller owns one page's local
// copy of the data, its load state and its create/edit modal; all I/O goes through the
// service interface it is built with, and all user dialogs through a Prompter.
//
// Controllers are not safe for concurrent use.
package pages

// Prompter is supplied by the host that renders a page. Both calls block from the
// controller's point of view.
type Prompter interface {
	Confirm(message string) bool
	Notify(message string)
}

// LoadState tracks a page's list fetch.
type LoadState int

const (
	Idle LoadState = iota
	Loading
	Loaded
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load_failed"
	default:
		return "idle"
	}
}

// ModalState tracks the create/edit modal.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalCreate
	ModalEdit
)

// page is the state every CRUD page shares.
type page struct {
	prompter Prompter
	state    LoadState
	err      string
	modal    ModalState
	saving   bool
}

func (p *page) State() LoadState { return p.state }

func (p *page) Loading() bool { return p.state == Loading }

// Error is the message of the last failed load, or "".
func (p *page) Error() string { return p.err }

func (p *page) Modal() ModalState { return p.modal }

func (p *page) ModalOpen() bool { return p.modal != ModalClosed }

func (p *page) Saving() bool { return p.saving }

func (p *page) beginLoad() {
	p.state = Loading
	p.err = ""
}

func (p *page) endLoad(err error) {
	if err != nil {
		p.state = LoadFailed
		p.err = err.Error()
		return
	}
	p.state = Loaded
}

func (p *page) closeModal() {
	p.modal = ModalClosed
}

func (p *page) confirm(message string) bool {
	if p.prompter == nil {
		return false
	}
	return p.prompter.Confirm(message)
}

func (p *page) notify(message string) {
	if p.prompter != nil {
		p.prompter.Notify(message)
	}
}

// saveFailed reports a failed create or update without touching the modal or the list.
func (p *page) saveFailed(editing bool, err error) {
	p.saving = false
	if editing {
		p.notify("Error al actualizar: " + err.Error())
		return
	}
	p.notify("Error al crear: " + err.Error())
}
