package mainwindow

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// loginScreen builds the sign-in form shown before the editor. The gate is
// a boolean flip with no credential verification.
func (mw *MainWindow) loginScreen() fyne.CanvasObject {
	username := widget.NewEntry()
	username.SetPlaceHolder("Username")

	password := widget.NewPasswordEntry()
	password.SetPlaceHolder("Password")

	signIn := widget.NewButton("Sign In", func() {
		mw.state.SetAuthenticated(true)
	})
	signIn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle("Engrave Studio", fyne.TextAlignCenter,
			fyne.TextStyle{Bold: true}),
		widget.NewLabel("Sign in to start designing"),
		username,
		password,
		signIn,
	)

	return container.NewCenter(container.NewGridWrap(
		fyne.NewSize(320, form.MinSize().Height), form))
}
