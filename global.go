package edigen

const (
	isaSegmentId = "ISA"
	ieaSegmentId = "IEA"
	gsSegmentId  = "GS"
	geSegmentId  = "GE"
	stSegmentId  = "ST"
	seSegmentId  = "SE"
	hlSegmentId  = "HL"

	isaVersion          = "00501"
	gsVersion           = "005010"
	responsibleAgency   = "X"
	authInfoQualifier   = "00"
	securityQualifier   = "00"
	senderIdQualifier   = "ZZ"
	receiverIdQualifier = "ZZ"
	usageIndicatorTest  = "T"

	isaControlNumberDigits = 9
	gsControlNumberDigits  = 4
	stControlNumberDigits  = 4
)

const (
	isaIndexSegmentId = iota
	isaIndexAuthInfoQualifier
	isaIndexAuthInfo
	isaIndexSecurityInfoQualifier
	isaIndexSecurityInfo
	isaIndexSenderIdQualifier
	isaIndexSenderId
	isaIndexReceiverIdQualifier
	isaIndexReceiverId
	isaIndexDate
	isaIndexTime
	isaIndexRepetitionSeparator
	isaIndexVersion
	isaIndexControlNumber
	isaIndexAckRequested
	isaIndexUsageIndicator
	isaIndexComponentElementSeparator
)

const (
	ieaIndexFunctionalGroupCount = iota + 1
	ieaIndexControlNumber
)

const (
	gsIndexFunctionalIdentifierCode = iota + 1
	gsIndexSenderCode
	gsIndexReceiverCode
	gsIndexDate
	gsIndexTime
	gsIndexControlNumber
	gsIndexResponsibleAgencyCode
	gsIndexVersion
)

const (
	geIndexNumberOfIncludedTransactionSets = iota + 1
	geIndexControlNumber
)

const (
	stIndexTransactionSetCode = iota + 1
	stIndexControlNumber
	stIndexVersionCode
)

const (
	seIndexNumberOfIncludedSegments = iota + 1
	seIndexControlNumber
)

// isaLen* consts indicate the length of elements in the ISA
// header (no more, no less, whitespace padded on the right)
const (
	isaLenAuthInfoQualifier     = 2
	isaLenAuthInfo              = 10
	isaLenSecurityInfoQualifier = 2
	isaLenSecurityInfo          = 10
	isaLenSenderIdQualifier     = 2
	isaLenSenderId              = 15
	isaLenReceiverIdQualifier   = 2
	isaLenReceiverId            = 15
	isaLenDate                  = 6
	isaLenTime                  = 4
	isaLenVersion               = 5
	isaLenControlNumber         = 9
	isaLenAckRequested          = 1
	isaLenUsageIndicator        = 1
)

const (
	hlIndexHierarchicalId = iota + 1
	hlIndexParentId
	hlIndexLevelCode
	hlIndexChildCode
)

// HL01 level codes used by the transaction types that build
// hierarchical trees
const (
	hlLevelInformationSource   = "20"
	hlLevelInformationReceiver = "21"
	hlLevelSubscriber          = "22"
	hlLevelPatientEvent        = "EV"
)

// TransactionType identifies one of the supported X12 5010
// healthcare transaction sets.
type TransactionType string

const (
	Transaction837P TransactionType = "837P"
	Transaction835  TransactionType = "835"
	Transaction270  TransactionType = "270"
	Transaction271  TransactionType = "271"
	Transaction278  TransactionType = "278"
	Transaction999  TransactionType = "999"
)

// TransactionTypes lists every supported transaction type, in the
// fixed order used to derive per-type random sources in "all" mode.
var TransactionTypes = []TransactionType{
	Transaction837P,
	Transaction835,
	Transaction270,
	Transaction271,
	Transaction278,
	Transaction999,
}

var functionalIdentifierCodes = map[TransactionType]string{
	Transaction837P: "HC",
	Transaction835:  "HP",
	Transaction270:  "HS",
	Transaction271:  "HB",
	Transaction278:  "HI",
	Transaction999:  "FA",
}

var transactionSetCodes = map[TransactionType]string{
	Transaction837P: "837",
	Transaction835:  "835",
	Transaction270:  "270",
	Transaction271:  "271",
	Transaction278:  "278",
	Transaction999:  "999",
}

// implementationConventions maps each transaction type to the ST03
// implementation convention reference for its 5010 guide
var implementationConventions = map[TransactionType]string{
	Transaction837P: "005010X222A1",
	Transaction835:  "005010X221A1",
	Transaction270:  "005010X279A1",
	Transaction271:  "005010X279A1",
	Transaction278:  "005010X217",
	Transaction999:  "005010X231A1",
}

// LineOfBusiness scopes which rows of the data pool registry are
// visible to a generation run.
type LineOfBusiness string

const (
	LOBPhysicalTherapy     LineOfBusiness = "PT"
	LOBOccupationalTherapy LineOfBusiness = "OT"
	LOBChiropractic        LineOfBusiness = "DC"
	LOBDiagnostics         LineOfBusiness = "DX"
	LOBDurableEquipment    LineOfBusiness = "DME"
	LOBHomeHealth          LineOfBusiness = "HH"
	LOBDental              LineOfBusiness = "DENTAL"
	LOBTransport           LineOfBusiness = "TRANSPORT"
	LOBLanguage            LineOfBusiness = "LANGUAGE"
	LOBAll                 LineOfBusiness = "ALL"
)

var lineOfBusinessTags = map[LineOfBusiness]bool{
	LOBPhysicalTherapy:     true,
	LOBOccupationalTherapy: true,
	LOBChiropractic:        true,
	LOBDiagnostics:         true,
	LOBDurableEquipment:    true,
	LOBHomeHealth:          true,
	LOBDental:              true,
	LOBTransport:           true,
	LOBLanguage:            true,
	LOBAll:                 true,
}

// wcFilingIndicator is the SBR09/CLP06 claim filing indicator code
// for workers' compensation, applied to every generated file.
const wcFilingIndicator = "WC"

// refQualifierAgencyClaim is the REF01 qualifier for a workers'
// compensation agency claim number.
const refQualifierAgencyClaim = "Y4"
