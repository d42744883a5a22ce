package tui

type keyCheckedMsg struct {
	keyExisted bool
	err        error
}

type vaultLoadedMsg struct {
	err error
}

type saveDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type clearDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
