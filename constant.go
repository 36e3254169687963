package iso8583

// DefaultSchema is a reference parse schema for the standard ISO 8583:1987
// data element layout (fields 2-128). It is not authoritative — callers
// parsing a particular network's dialect should build their own schema via
// FactoryBuilder.SetParseMap. FactoryBuilder never installs it on its own;
// a caller passes it to SetParseMap explicitly. It uses every IsoType
// except LLBIN.
// Field meaning (what DE 4 or DE 39 represents) is out of scope for this
// codec; the comments below are descriptive only.
var DefaultSchema = map[int]FieldParseInfo{
	2:  {Kind: LLVAR, DeclaredLength: 19},     // Primary Account Number
	3:  {Kind: NUMERIC, DeclaredLength: 6},     // Processing Code
	4:  {Kind: AMOUNT},                         // Amount, Transaction
	5:  {Kind: AMOUNT},                         // Amount, Settlement
	6:  {Kind: AMOUNT},                         // Amount, Cardholder Billing
	7:  {Kind: DATE10},                         // Transmission Date & Time
	8:  {Kind: NUMERIC, DeclaredLength: 8},     // Amount, Cardholder Billing Fee
	9:  {Kind: NUMERIC, DeclaredLength: 8},     // Conversion Rate, Settlement
	10: {Kind: NUMERIC, DeclaredLength: 8},     // Conversion Rate, Cardholder Billing
	11: {Kind: NUMERIC, DeclaredLength: 6},     // System Trace Audit Number
	12: {Kind: TIME},                           // Time, Local Transaction
	13: {Kind: DATE4},                          // Date, Local Transaction
	14: {Kind: DATEEXP},                        // Date, Expiration
	15: {Kind: NUMERIC, DeclaredLength: 4},     // Date, Settlement
	16: {Kind: NUMERIC, DeclaredLength: 4},     // Date, Conversion
	17: {Kind: NUMERIC, DeclaredLength: 4},     // Date, Capture
	18: {Kind: NUMERIC, DeclaredLength: 4},     // Merchant Type
	19: {Kind: NUMERIC, DeclaredLength: 3},     // Acquiring Institution Country Code
	20: {Kind: NUMERIC, DeclaredLength: 3},     // PAN Extended, Country Code
	21: {Kind: NUMERIC, DeclaredLength: 3},     // Forwarding Institution Country Code
	22: {Kind: NUMERIC, DeclaredLength: 3},     // Point of Service Entry Mode
	23: {Kind: NUMERIC, DeclaredLength: 3},     // Application PAN Sequence Number
	24: {Kind: NUMERIC, DeclaredLength: 3},     // Network International Identifier
	25: {Kind: NUMERIC, DeclaredLength: 2},     // Point of Service Condition Code
	26: {Kind: NUMERIC, DeclaredLength: 2},     // Point of Service Capture Code
	27: {Kind: NUMERIC, DeclaredLength: 1},     // Authorizing Identification Response Length
	28: {Kind: NUMERIC, DeclaredLength: 9},     // Amount, Transaction Fee
	29: {Kind: NUMERIC, DeclaredLength: 9},     // Amount, Settlement Fee
	30: {Kind: NUMERIC, DeclaredLength: 9},     // Amount, Transaction Processing Fee
	31: {Kind: NUMERIC, DeclaredLength: 9},     // Amount, Settlement Processing Fee
	32: {Kind: LLVAR, DeclaredLength: 11},      // Acquiring Institution Identification Code
	33: {Kind: LLVAR, DeclaredLength: 11},      // Forwarding Institution Identification Code
	34: {Kind: LLVAR, DeclaredLength: 28},      // Primary Account Number, Extended
	35: {Kind: LLVAR, DeclaredLength: 37},      // Track 2 Data
	36: {Kind: LLLVAR, DeclaredLength: 104},    // Track 3 Data
	37: {Kind: ALPHA, DeclaredLength: 12},      // Retrieval Reference Number
	38: {Kind: ALPHA, DeclaredLength: 6},       // Authorization Identification Response
	39: {Kind: ALPHA, DeclaredLength: 2},       // Response Code
	40: {Kind: ALPHA, DeclaredLength: 3},       // Service Restriction Code
	41: {Kind: ALPHA, DeclaredLength: 8},       // Card Acceptor Terminal Identification
	42: {Kind: ALPHA, DeclaredLength: 15},      // Card Acceptor Identification Code
	43: {Kind: ALPHA, DeclaredLength: 40},      // Card Acceptor Name/Location
	44: {Kind: LLVAR, DeclaredLength: 25},      // Additional Response Data
	45: {Kind: LLVAR, DeclaredLength: 76},      // Track 1 Data
	46: {Kind: LLLVAR, DeclaredLength: 999},    // Additional Data, ISO
	47: {Kind: LLLVAR, DeclaredLength: 999},    // Additional Data, National
	48: {Kind: LLLVAR, DeclaredLength: 999},    // Additional Data, Private
	49: {Kind: ALPHA, DeclaredLength: 3},       // Currency Code, Transaction
	50: {Kind: ALPHA, DeclaredLength: 3},       // Currency Code, Settlement
	51: {Kind: ALPHA, DeclaredLength: 3},       // Currency Code, Cardholder Billing
	52: {Kind: BINARY, DeclaredLength: 8},      // Personal Identification Number Data
	53: {Kind: NUMERIC, DeclaredLength: 16},    // Security Related Control Information
	54: {Kind: LLLVAR, DeclaredLength: 120},    // Additional Amounts
	55: {Kind: LLLBIN, DeclaredLength: 999},    // ICC Data (EMV)
	56: {Kind: LLLVAR, DeclaredLength: 999},    // Reserved, ISO
	57: {Kind: LLLVAR, DeclaredLength: 999},    // Reserved, National
	58: {Kind: LLLVAR, DeclaredLength: 999},    // Reserved, National
	59: {Kind: LLLVAR, DeclaredLength: 999},    // Reserved, National
	60: {Kind: LLLVAR, DeclaredLength: 999},    // Reserved, Private
	61: {Kind: LLLVAR, DeclaredLength: 999},    // Reserved, Private
	62: {Kind: LLLVAR, DeclaredLength: 999},    // Reserved, Private
	63: {Kind: LLLVAR, DeclaredLength: 999},    // Reserved, Private
	64: {Kind: BINARY, DeclaredLength: 8},      // Message Authentication Code (primary bitmap MAC)

	66: {Kind: NUMERIC, DeclaredLength: 1},     // Settlement Code
	67: {Kind: NUMERIC, DeclaredLength: 2},     // Extended Payment Code
	68: {Kind: NUMERIC, DeclaredLength: 3},     // Receiving Institution Country Code
	69: {Kind: NUMERIC, DeclaredLength: 3},     // Settlement Institution Country Code
	70: {Kind: NUMERIC, DeclaredLength: 3},     // Network Management Information Code
	71: {Kind: NUMERIC, DeclaredLength: 4},     // Message Number
	72: {Kind: NUMERIC, DeclaredLength: 4},     // Message Number, Last
	73: {Kind: NUMERIC, DeclaredLength: 6},     // Date, Action
	74: {Kind: NUMERIC, DeclaredLength: 10},    // Credits, Number
	75: {Kind: NUMERIC, DeclaredLength: 10},    // Credits, Reversal Number
	76: {Kind: NUMERIC, DeclaredLength: 10},    // Debits, Number
	77: {Kind: NUMERIC, DeclaredLength: 10},    // Debits, Reversal Number
	78: {Kind: NUMERIC, DeclaredLength: 10},    // Transfer, Number
	79: {Kind: NUMERIC, DeclaredLength: 10},    // Transfer, Reversal Number
	80: {Kind: NUMERIC, DeclaredLength: 10},    // Inquiries, Number
	81: {Kind: NUMERIC, DeclaredLength: 10},    // Authorizations, Number
	82: {Kind: NUMERIC, DeclaredLength: 12},    // Credits, Processing Fee Amount
	83: {Kind: NUMERIC, DeclaredLength: 12},    // Credits, Transaction Fee Amount
	84: {Kind: NUMERIC, DeclaredLength: 12},    // Debits, Processing Fee Amount
	85: {Kind: NUMERIC, DeclaredLength: 12},    // Debits, Transaction Fee Amount
	86: {Kind: NUMERIC, DeclaredLength: 16},    // Credits, Amount
	87: {Kind: NUMERIC, DeclaredLength: 16},    // Credits, Reversal Amount
	88: {Kind: NUMERIC, DeclaredLength: 16},    // Debits, Amount
	89: {Kind: NUMERIC, DeclaredLength: 16},    // Debits, Reversal Amount
	90: {Kind: NUMERIC, DeclaredLength: 42},    // Original Data Elements
	91: {Kind: ALPHA, DeclaredLength: 1},       // File Update Code
	92: {Kind: ALPHA, DeclaredLength: 2},       // File Security Code
	93: {Kind: ALPHA, DeclaredLength: 5},       // Response Indicator
	94: {Kind: ALPHA, DeclaredLength: 7},       // Service Indicator
	95: {Kind: ALPHA, DeclaredLength: 42},      // Replacement Amounts
	96: {Kind: BINARY, DeclaredLength: 8},      // Message Security Code
	97: {Kind: NUMERIC, DeclaredLength: 17},    // Amount, Net Settlement
	98: {Kind: ALPHA, DeclaredLength: 25},      // Payee

	99:  {Kind: LLVAR, DeclaredLength: 11},     // Settlement Institution Identification Code
	100: {Kind: LLVAR, DeclaredLength: 11},     // Receiving Institution Identification Code
	101: {Kind: LLVAR, DeclaredLength: 17},     // File Name
	102: {Kind: LLVAR, DeclaredLength: 28},     // Account Identification 1
	103: {Kind: LLVAR, DeclaredLength: 28},     // Account Identification 2
	104: {Kind: LLLVAR, DeclaredLength: 100},   // Transaction Description

	128: {Kind: BINARY, DeclaredLength: 8}, // Message Authentication Code (secondary bitmap MAC)
}
