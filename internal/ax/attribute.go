package ax

// Attribute names understood by AXUIElementCopyAttributeValue.
const (
	// Informational attributes.
	AttributeRole            = "AXRole"
	AttributeSubrole         = "AXSubrole"
	AttributeRoleDescription = "AXRoleDescription"
	AttributeTitle           = "AXTitle"
	AttributeDescription     = "AXDescription"
	AttributeHelp            = "AXHelp"

	// Hierarchy or relationship attributes.
	AttributeParent                     = "AXParent"
	AttributeChildren                   = "AXChildren"
	AttributeSelectedChildren           = "AXSelectedChildren"
	AttributeVisibleChildren            = "AXVisibleChildren"
	AttributeWindow                     = "AXWindow"
	AttributeTopLevelUIElement          = "AXTopLevelUIElement"
	AttributeTitleUIElement             = "AXTitleUIElement"
	AttributeServesAsTitleForUIElements = "AXServesAsTitleForUIElements"
	AttributeLinkedUIElements           = "AXLinkedUIElements"
	AttributeSharedFocusElements        = "AXSharedFocusElements"

	// Visual state attributes.
	AttributeEnabled  = "AXEnabled"
	AttributeFocused  = "AXFocused"
	AttributePosition = "AXPosition"
	AttributeSize     = "AXSize"

	// Value attributes.
	AttributeValue            = "AXValue"
	AttributeValueDescription = "AXValueDescription"
	AttributeMinValue         = "AXMinValue"
	AttributeMaxValue         = "AXMaxValue"
	AttributeValueIncrement   = "AXValueIncrement"
	AttributeValueWraps       = "AXValueWraps"
	AttributeAllowedValues    = "AXAllowedValues"

	// Text-specific attributes.
	AttributeSelectedText          = "AXSelectedText"
	AttributeSelectedTextRange     = "AXSelectedTextRange"
	AttributeSelectedTextRanges    = "AXSelectedTextRanges"
	AttributeVisibleCharacterRange = "AXVisibleCharacterRange"
	AttributeNumberOfCharacters    = "AXNumberOfCharacters"
	AttributeSharedTextUIElements  = "AXSharedTextUIElements"
	AttributeSharedCharacterRange  = "AXSharedCharacterRange"

	// Window, sheet, or drawer-specific attributes.
	AttributeMain             = "AXMain"
	AttributeMinimized        = "AXMinimized"
	AttributeCloseButton      = "AXCloseButton"
	AttributeZoomButton       = "AXZoomButton"
	AttributeMinimizeButton   = "AXMinimizeButton"
	AttributeToolbarButton    = "AXToolbarButton"
	AttributeFullScreenButton = "AXFullScreenButton"
	AttributeProxy            = "AXProxy"
	AttributeGrowArea         = "AXGrowArea"
	AttributeModal            = "AXModal"
	AttributeDefaultButton    = "AXDefaultButton"
	AttributeCancelButton     = "AXCancelButton"

	// Menu or menu item-specific attributes.
	AttributeMenuItemCmdChar          = "AXMenuItemCmdChar"
	AttributeMenuItemCmdVirtualKey    = "AXMenuItemCmdVirtualKey"
	AttributeMenuItemCmdGlyph         = "AXMenuItemCmdGlyph"
	AttributeMenuItemCmdModifiers     = "AXMenuItemCmdModifiers"
	AttributeMenuItemMarkChar         = "AXMenuItemMarkChar"
	AttributeMenuItemPrimaryUIElement = "AXMenuItemPrimaryUIElement"

	// Application element-specific attributes.
	AttributeMenuBar          = "AXMenuBar"
	AttributeWindows          = "AXWindows"
	AttributeFrontmost        = "AXFrontmost"
	AttributeHidden           = "AXHidden"
	AttributeMainWindow       = "AXMainWindow"
	AttributeFocusedWindow    = "AXFocusedWindow"
	AttributeFocusedUIElement = "AXFocusedUIElement"
	AttributeExtrasMenuBar    = "AXExtrasMenuBar"

	// Date/time-specific attributes.
	AttributeHourField   = "AXHourField"
	AttributeMinuteField = "AXMinuteField"
	AttributeSecondField = "AXSecondField"
	AttributeAMPMField   = "AXAMPMField"
	AttributeDayField    = "AXDayField"
	AttributeMonthField  = "AXMonthField"
	AttributeYearField   = "AXYearField"

	// Table, outline, or browser-specific attributes.
	AttributeRows                   = "AXRows"
	AttributeVisibleRows            = "AXVisibleRows"
	AttributeSelectedRows           = "AXSelectedRows"
	AttributeColumns                = "AXColumns"
	AttributeVisibleColumns         = "AXVisibleColumns"
	AttributeSelectedColumns        = "AXSelectedColumns"
	AttributeSortDirection          = "AXSortDirection"
	AttributeColumnHeaderUIElements = "AXColumnHeaderUIElements"
	AttributeIndex                  = "AXIndex"
	AttributeDisclosing             = "AXDisclosing"
	AttributeDisclosedRows          = "AXDisclosedRows"
	AttributeDisclosedByRow         = "AXDisclosedByRow"

	// Matte-specific attributes.
	AttributeMatteHole             = "AXMatteHole"
	AttributeMatteContentUIElement = "AXMatteContentUIElement"

	// Ruler-specific attributes.
	AttributeMarkerUIElements      = "AXMarkerUIElements"
	AttributeUnits                 = "AXUnits"
	AttributeUnitDescription       = "AXUnitDescription"
	AttributeMarkerType            = "AXMarkerType"
	AttributeMarkerTypeDescription = "AXMarkerTypeDescription"

	// Miscellaneous or role-specific attributes.
	AttributeHorizontalScrollBar  = "AXHorizontalScrollBar"
	AttributeVerticalScrollBar    = "AXVerticalScrollBar"
	AttributeOrientation          = "AXOrientation"
	AttributeHeader               = "AXHeader"
	AttributeEdited               = "AXEdited"
	AttributeTabs                 = "AXTabs"
	AttributeOverflowButton       = "AXOverflowButton"
	AttributeFilename             = "AXFilename"
	AttributeExpanded             = "AXExpanded"
	AttributeSelected             = "AXSelected"
	AttributeSplitters            = "AXSplitters"
	AttributeContents             = "AXContents"
	AttributeNextContents         = "AXNextContents"
	AttributePreviousContents     = "AXPreviousContents"
	AttributeDocument             = "AXDocument"
	AttributeIncrementor          = "AXIncrementor"
	AttributeDecrementButton      = "AXDecrementButton"
	AttributeIncrementButton      = "AXIncrementButton"
	AttributeColumnTitle          = "AXColumnTitle"
	AttributeURL                  = "AXURL"
	AttributeLabelUIElements      = "AXLabelUIElements"
	AttributeLabelValue           = "AXLabelValue"
	AttributeShownMenuUIElement   = "AXShownMenuUIElement"
	AttributeIsApplicationRunning = "AXIsApplicationRunning"
	AttributeFocusedApplication   = "AXFocusedApplication"
	AttributeElementBusy          = "AXElementBusy"
	AttributeAlternateUIVisible   = "AXAlternateUIVisible"

	// Parameterized attributes.
	ParameterizedAttributeLineForIndex             = "AXLineForIndex"
	ParameterizedAttributeRangeForLine             = "AXRangeForLine"
	ParameterizedAttributeStringForRange           = "AXStringForRange"
	ParameterizedAttributeRangeForPosition         = "AXRangeForPosition"
	ParameterizedAttributeRangeForIndex            = "AXRangeForIndex"
	ParameterizedAttributeBoundsForRange           = "AXBoundsForRange"
	ParameterizedAttributeRTFForRange              = "AXRTFForRange"
	ParameterizedAttributeStyleRangeForIndex       = "AXStyleRangeForIndex"
	ParameterizedAttributeAttributedStringForRange = "AXAttributedStringForRange"
)
