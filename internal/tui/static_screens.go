package tui

type aboutModel struct {
	version string
}

func (m aboutModel) View() string {
	out := titleStyle.Render("About VaultDrop") + "\n\n"
	out += "VaultDrop is a personal drop box keyed by a single secret.\n"
	out += "Whatever you put in — images, videos, PDFs, plain notes —\n"
	out += "is reachable from anywhere with nothing but the key.\n\n"
	out += "There is no sign-up. The key IS the vault: anyone holding\n"
	out += "it can read, add and delete, so treat it like a password.\n"
	if m.version != "" {
		out += "\nVersion " + m.version + "\n"
	}
	out += "\n" + helpStyle.Render("esc back  q quit")
	return out
}

type howItWorksModel struct{}

func (m howItWorksModel) View() string {
	out := titleStyle.Render("How it works") + "\n\n"
	out += "1. Pick a key\n"
	out += "   Enter any key on the home screen. An unused key opens\n"
	out += "   a brand-new empty vault; a known key opens the vault\n"
	out += "   stored under it.\n\n"
	out += "2. Drop things in\n"
	out += "   Add local files by path and jot notes straight into\n"
	out += "   the vault. Everything is kept on the server, never on\n"
	out += "   this machine.\n\n"
	out += "3. Come back for them\n"
	out += "   The same key shows the same vault on any device.\n"
	out += "   Delete single items or clear the whole vault when\n"
	out += "   you are done.\n"
	out += "\n" + helpStyle.Render("esc back  q quit")
	return out
}
