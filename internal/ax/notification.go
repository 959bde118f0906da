package ax

// Notification names and userInfo keys. The poller does not subscribe to
// notifications; these are kept alongside the attribute catalog for callers
// that log or compare them.
const (
	// Focus notifications.
	NotificationMainWindowChanged       = "AXMainWindowChanged"
	NotificationFocusedWindowChanged    = "AXFocusedWindowChanged"
	NotificationFocusedUIElementChanged = "AXFocusedUIElementChanged"

	// Application notifications.
	NotificationApplicationActivated   = "AXApplicationActivated"
	NotificationApplicationDeactivated = "AXApplicationDeactivated"
	NotificationApplicationHidden      = "AXApplicationHidden"
	NotificationApplicationShown       = "AXApplicationShown"

	// Window notifications.
	NotificationWindowCreated        = "AXWindowCreated"
	NotificationWindowMoved          = "AXWindowMoved"
	NotificationWindowResized        = "AXWindowResized"
	NotificationWindowMiniaturized   = "AXWindowMiniaturized"
	NotificationWindowDeminiaturized = "AXWindowDeminiaturized"

	// New drawer, sheet, and help notifications.
	NotificationDrawerCreated  = "AXDrawerCreated"
	NotificationSheetCreated   = "AXSheetCreated"
	NotificationHelpTagCreated = "AXHelpTagCreated"

	// Element notifications.
	NotificationValueChanged       = "AXValueChanged"
	NotificationUIElementDestroyed = "AXUIElementDestroyed"
	NotificationElementBusyChanged = "AXElementBusyChanged"

	// Menu notifications.
	NotificationMenuOpened       = "AXMenuOpened"
	NotificationMenuClosed       = "AXMenuClosed"
	NotificationMenuItemSelected = "AXMenuItemSelected"

	// Table/outline notifications.
	NotificationRowCountChanged = "AXRowCountChanged"

	// Outline notifications.
	NotificationRowExpanded  = "AXRowExpanded"
	NotificationRowCollapsed = "AXRowCollapsed"

	// Cell-based table notifications.
	NotificationSelectedCellsChanged = "AXSelectedCellsChanged"

	// Layout area notifications.
	NotificationUnitsChanged          = "AXUnitsChanged"
	NotificationSelectedChildrenMoved = "AXSelectedChildrenMoved"

	// Other notifications.
	NotificationSelectedChildrenChanged = "AXSelectedChildrenChanged"
	NotificationResized                 = "AXResized"
	NotificationMoved                   = "AXMoved"
	NotificationCreated                 = "AXCreated"
	NotificationSelectedRowsChanged     = "AXSelectedRowsChanged"
	NotificationSelectedColumnsChanged  = "AXSelectedColumnsChanged"
	NotificationTitleChanged            = "AXTitleChanged"
	NotificationLayoutChanged           = "AXLayoutChanged"
	NotificationAnnouncementRequested   = "AXAnnouncementRequested"
	NotificationKeyUIElements           = "AXUIElementsKey"
	NotificationKeyPriority             = "AXPriorityKey"
	NotificationKeyAnnouncement         = "AXAnnouncementKey"
	NotificationKeyUIElementTitle       = "AXUIElementTitleKey"
)
