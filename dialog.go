package winkit

// MessageBox displays a modal dialog with the given text, caption and button
// layout, and returns the button the user dismissed it with.
//
// The call blocks the calling thread until the user dismisses the dialog;
// invoking it from a UI thread freezes that thread's message processing for
// the duration. The zero Window may be passed as owner for an unowned
// dialog.
func MessageBox(owner Window, text, caption string, boxType BoxType) (ButtonResult, error) {
	ret := api.MessageBox(owner.hwnd, text, caption, uint32(boxType))
	if ret == 0 {
		return 0, lastCallError("MessageBoxW")
	}

	return ButtonResult(ret), nil
}
