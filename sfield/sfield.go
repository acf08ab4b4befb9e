// Package sfield is the typed serialized-field registry. Each constant
// binds one protocol field code to the Go type its value decodes into,
// so call sites like GetField(slot, sfield.Balance) infer the result
// type from the constant alone.
//
// Field codes follow the rippled registry: the upper 16 bits carry the
// serialized type, the lower 16 the field number within that type.
// Arrays, inner objects and other fields that never decode to a single
// value are plain int32 codes for use with locators.
package sfield

import "github.com/xrplf/xrpl-wasm-go/types"

// Field carries a field code together with the value type it decodes to.
type Field[T any] int32

// Code returns the raw protocol field code.
func (f Field[T]) Code() int32 { return int32(f) }

const (
	Invalid int32 = -1
	Generic int32 = 0
)

var (
	LedgerEntryType = Field[types.UInt16](65537)
	TransactionType = Field[types.UInt16](65538)
	SignerWeight = Field[types.UInt16](65539)
	TransferFee = Field[types.UInt16](65540)
	TradingFee = Field[types.UInt16](65541)
	DiscountedFee = Field[types.UInt16](65542)
	Version = Field[types.UInt16](65552)
	HookStateChangeCount = Field[types.UInt16](65553)
	HookEmitCount = Field[types.UInt16](65554)
	HookExecutionIndex = Field[types.UInt16](65555)
	HookApiVersion = Field[types.UInt16](65556)
	LedgerFixType = Field[types.UInt16](65557)
	NetworkID = Field[types.UInt32](131073)
	Flags = Field[types.UInt32](131074)
	SourceTag = Field[types.UInt32](131075)
	Sequence = Field[types.UInt32](131076)
	PreviousTxnLgrSeq = Field[types.UInt32](131077)
	LedgerSequence = Field[types.UInt32](131078)
	CloseTime = Field[types.UInt32](131079)
	ParentCloseTime = Field[types.UInt32](131080)
	SigningTime = Field[types.UInt32](131081)
	Expiration = Field[types.UInt32](131082)
	TransferRate = Field[types.UInt32](131083)
	WalletSize = Field[types.UInt32](131084)
	OwnerCount = Field[types.UInt32](131085)
	DestinationTag = Field[types.UInt32](131086)
	LastUpdateTime = Field[types.UInt32](131087)
	HighQualityIn = Field[types.UInt32](131088)
	HighQualityOut = Field[types.UInt32](131089)
	LowQualityIn = Field[types.UInt32](131090)
	LowQualityOut = Field[types.UInt32](131091)
	QualityIn = Field[types.UInt32](131092)
	QualityOut = Field[types.UInt32](131093)
	StampEscrow = Field[types.UInt32](131094)
	BondAmount = Field[types.UInt32](131095)
	LoadFee = Field[types.UInt32](131096)
	OfferSequence = Field[types.UInt32](131097)
	FirstLedgerSequence = Field[types.UInt32](131098)
	LastLedgerSequence = Field[types.UInt32](131099)
	TransactionIndex = Field[types.UInt32](131100)
	OperationLimit = Field[types.UInt32](131101)
	ReferenceFeeUnits = Field[types.UInt32](131102)
	ReserveBase = Field[types.UInt32](131103)
	ReserveIncrement = Field[types.UInt32](131104)
	SetFlag = Field[types.UInt32](131105)
	ClearFlag = Field[types.UInt32](131106)
	SignerQuorum = Field[types.UInt32](131107)
	CancelAfter = Field[types.UInt32](131108)
	FinishAfter = Field[types.UInt32](131109)
	SignerListID = Field[types.UInt32](131110)
	SettleDelay = Field[types.UInt32](131111)
	TicketCount = Field[types.UInt32](131112)
	TicketSequence = Field[types.UInt32](131113)
	NFTokenTaxon = Field[types.UInt32](131114)
	MintedNFTokens = Field[types.UInt32](131115)
	BurnedNFTokens = Field[types.UInt32](131116)
	HookStateCount = Field[types.UInt32](131117)
	EmitGeneration = Field[types.UInt32](131118)
	VoteWeight = Field[types.UInt32](131120)
	FirstNFTokenSequence = Field[types.UInt32](131122)
	OracleDocumentID = Field[types.UInt32](131123)
	PermissionValue = Field[types.UInt32](131124)
	MutableFlags = Field[types.UInt32](131125)
	ExtensionComputeLimit = Field[types.UInt32](131126)
	ExtensionSizeLimit = Field[types.UInt32](131127)
	GasPrice = Field[types.UInt32](131128)
	ComputationAllowance = Field[types.UInt32](131129)
	GasUsed = Field[types.UInt32](131130)
	IndexNext = Field[types.UInt64](196609)
	IndexPrevious = Field[types.UInt64](196610)
	BookNode = Field[types.UInt64](196611)
	OwnerNode = Field[types.UInt64](196612)
	BaseFee = Field[types.UInt64](196613)
	ExchangeRate = Field[types.UInt64](196614)
	LowNode = Field[types.UInt64](196615)
	HighNode = Field[types.UInt64](196616)
	DestinationNode = Field[types.UInt64](196617)
	Cookie = Field[types.UInt64](196618)
	ServerVersion = Field[types.UInt64](196619)
	NFTokenOfferNode = Field[types.UInt64](196620)
	EmitBurden = Field[types.UInt64](196621)
	HookOn = Field[types.UInt64](196624)
	HookInstructionCount = Field[types.UInt64](196625)
	HookReturnCode = Field[types.UInt64](196626)
	ReferenceCount = Field[types.UInt64](196627)
	XChainClaimID = Field[types.UInt64](196628)
	XChainAccountCreateCount = Field[types.UInt64](196629)
	XChainAccountClaimCount = Field[types.UInt64](196630)
	AssetPrice = Field[types.UInt64](196631)
	MaximumAmount = Field[types.UInt64](196632)
	OutstandingAmount = Field[types.UInt64](196633)
	MPTAmount = Field[types.UInt64](196634)
	IssuerNode = Field[types.UInt64](196635)
	SubjectNode = Field[types.UInt64](196636)
	LockedAmount = Field[types.UInt64](196637)
	EmailHash = Field[types.Hash128](262145)
	LedgerHash = Field[types.Hash256](327681)
	ParentHash = Field[types.Hash256](327682)
	TransactionHash = Field[types.Hash256](327683)
	AccountHash = Field[types.Hash256](327684)
	PreviousTxnID = Field[types.Hash256](327685)
	LedgerIndex = Field[types.Hash256](327686)
	WalletLocator = Field[types.Hash256](327687)
	RootIndex = Field[types.Hash256](327688)
	AccountTxnID = Field[types.Hash256](327689)
	NFTokenID = Field[types.Hash256](327690)
	EmitParentTxnID = Field[types.Hash256](327691)
	EmitNonce = Field[types.Hash256](327692)
	EmitHookHash = Field[types.Hash256](327693)
	AMMID = Field[types.Hash256](327694)
	BookDirectory = Field[types.Hash256](327696)
	InvoiceID = Field[types.Hash256](327697)
	Nickname = Field[types.Hash256](327698)
	Amendment = Field[types.Hash256](327699)
	Digest = Field[types.Hash256](327701)
	Channel = Field[types.Hash256](327702)
	ConsensusHash = Field[types.Hash256](327703)
	CheckID = Field[types.Hash256](327704)
	ValidatedHash = Field[types.Hash256](327705)
	PreviousPageMin = Field[types.Hash256](327706)
	NextPageMin = Field[types.Hash256](327707)
	NFTokenBuyOffer = Field[types.Hash256](327708)
	NFTokenSellOffer = Field[types.Hash256](327709)
	HookStateKey = Field[types.Hash256](327710)
	HookHash = Field[types.Hash256](327711)
	HookNamespace = Field[types.Hash256](327712)
	HookSetTxnID = Field[types.Hash256](327713)
	DomainID = Field[types.Hash256](327714)
	VaultID = Field[types.Hash256](327715)
	ParentBatchID = Field[types.Hash256](327716)
	Amount = Field[types.TokenAmount](393217)
	Balance = Field[types.TokenAmount](393218)
	LimitAmount = Field[types.TokenAmount](393219)
	TakerPays = Field[types.TokenAmount](393220)
	TakerGets = Field[types.TokenAmount](393221)
	LowLimit = Field[types.TokenAmount](393222)
	HighLimit = Field[types.TokenAmount](393223)
	Fee = Field[types.TokenAmount](393224)
	SendMax = Field[types.TokenAmount](393225)
	DeliverMin = Field[types.TokenAmount](393226)
	Amount2 = Field[types.TokenAmount](393227)
	BidMin = Field[types.TokenAmount](393228)
	BidMax = Field[types.TokenAmount](393229)
	MinimumOffer = Field[types.TokenAmount](393232)
	RippleEscrow = Field[types.TokenAmount](393233)
	DeliveredAmount = Field[types.TokenAmount](393234)
	NFTokenBrokerFee = Field[types.TokenAmount](393235)
	BaseFeeDrops = Field[types.TokenAmount](393238)
	ReserveBaseDrops = Field[types.TokenAmount](393239)
	ReserveIncrementDrops = Field[types.TokenAmount](393240)
	LPTokenOut = Field[types.TokenAmount](393241)
	LPTokenIn = Field[types.TokenAmount](393242)
	EPrice = Field[types.TokenAmount](393243)
	Price = Field[types.TokenAmount](393244)
	SignatureReward = Field[types.TokenAmount](393245)
	MinAccountCreateAmount = Field[types.TokenAmount](393246)
	LPTokenBalance = Field[types.TokenAmount](393247)
	PublicKey = Field[types.Blob](458753)
	MessageKey = Field[types.Blob](458754)
	SigningPubKey = Field[types.Blob](458755)
	TxnSignature = Field[types.Blob](458756)
	URI = Field[types.Blob](458757)
	Signature = Field[types.Blob](458758)
	Domain = Field[types.Blob](458759)
	FundCode = Field[types.Blob](458760)
	RemoveCode = Field[types.Blob](458761)
	ExpireCode = Field[types.Blob](458762)
	CreateCode = Field[types.Blob](458763)
	MemoType = Field[types.Blob](458764)
	MemoData = Field[types.Blob](458765)
	MemoFormat = Field[types.Blob](458766)
	Fulfillment = Field[types.Blob](458768)
	Condition = Field[types.Blob](458769)
	MasterSignature = Field[types.Blob](458770)
	UNLModifyValidator = Field[types.Blob](458771)
	ValidatorToDisable = Field[types.Blob](458772)
	ValidatorToReEnable = Field[types.Blob](458773)
	HookStateData = Field[types.Blob](458774)
	HookReturnString = Field[types.Blob](458775)
	HookParameterName = Field[types.Blob](458776)
	HookParameterValue = Field[types.Blob](458777)
	DIDDocument = Field[types.Blob](458778)
	Data = Field[types.Blob](458779)
	AssetClass = Field[types.Blob](458780)
	Provider = Field[types.Blob](458781)
	MPTokenMetadata = Field[types.Blob](458782)
	CredentialType = Field[types.Blob](458783)
	FinishFunction = Field[types.Blob](458784)
	Account = Field[types.AccountID](524289)
	Owner = Field[types.AccountID](524290)
	Destination = Field[types.AccountID](524291)
	Issuer = Field[types.AccountID](524292)
	Authorize = Field[types.AccountID](524293)
	Unauthorize = Field[types.AccountID](524294)
	RegularKey = Field[types.AccountID](524296)
	NFTokenMinter = Field[types.AccountID](524297)
	EmitCallback = Field[types.AccountID](524298)
	Holder = Field[types.AccountID](524299)
	Delegate = Field[types.AccountID](524300)
	HookAccount = Field[types.AccountID](524304)
	OtherChainSource = Field[types.AccountID](524306)
	OtherChainDestination = Field[types.AccountID](524307)
	AttestationSignerAccount = Field[types.AccountID](524308)
	AttestationRewardAccount = Field[types.AccountID](524309)
	LockingChainDoor = Field[types.AccountID](524310)
	IssuingChainDoor = Field[types.AccountID](524311)
	Subject = Field[types.AccountID](524312)
	CloseResolution = Field[types.UInt8](1048577)
	Method = Field[types.UInt8](1048578)
	TransactionResult = Field[types.UInt8](1048579)
	Scale = Field[types.UInt8](1048580)
	AssetScale = Field[types.UInt8](1048581)
	TickSize = Field[types.UInt8](1048592)
	UNLModifyDisabling = Field[types.UInt8](1048593)
	HookResult = Field[types.UInt8](1048594)
	WasLockingChainSend = Field[types.UInt8](1048595)
	WithdrawalPolicy = Field[types.UInt8](1048596)
	TakerPaysCurrency = Field[types.Hash160](1114113)
	TakerPaysIssuer = Field[types.Hash160](1114114)
	TakerGetsCurrency = Field[types.Hash160](1114115)
	TakerGetsIssuer = Field[types.Hash160](1114116)
	MPTokenIssuanceID = Field[types.Hash192](1376257)
	ShareMPTID = Field[types.Hash192](1376258)
	LockingChainIssue = Field[types.Issue](1572865)
	IssuingChainIssue = Field[types.Issue](1572866)
	Asset = Field[types.Issue](1572867)
	Asset2 = Field[types.Issue](1572868)
	BaseAsset = Field[types.Currency](1703937)
	QuoteAsset = Field[types.Currency](1703938)
)

// Field codes without a single-value decoding: arrays, inner objects,
// pathsets and metadata containers.
const (
	Number int32 = 589825
	AssetsAvailable int32 = 589826
	AssetsMaximum int32 = 589827
	AssetsTotal int32 = 589828
	LossUnrealized int32 = 589829
	WasmReturnCode int32 = 655361
	TransactionMetaData int32 = 917506
	CreatedNode int32 = 917507
	DeletedNode int32 = 917508
	ModifiedNode int32 = 917509
	PreviousFields int32 = 917510
	FinalFields int32 = 917511
	NewFields int32 = 917512
	TemplateEntry int32 = 917513
	Memo int32 = 917514
	SignerEntry int32 = 917515
	NFToken int32 = 917516
	EmitDetails int32 = 917517
	Hook int32 = 917518
	Permission int32 = 917519
	Signer int32 = 917520
	Majority int32 = 917522
	DisabledValidator int32 = 917523
	EmittedTxn int32 = 917524
	HookExecution int32 = 917525
	HookDefinition int32 = 917526
	HookParameter int32 = 917527
	HookGrant int32 = 917528
	VoteEntry int32 = 917529
	AuctionSlot int32 = 917530
	AuthAccount int32 = 917531
	XChainClaimProofSig int32 = 917532
	XChainCreateAccountProofSig int32 = 917533
	XChainClaimAttestationCollectionElement int32 = 917534
	XChainCreateAccountAttestationCollectionElement int32 = 917535
	PriceData int32 = 917536
	Credential int32 = 917537
	RawTransaction int32 = 917538
	BatchSigner int32 = 917539
	Book int32 = 917540
	Signers int32 = 983043
	SignerEntries int32 = 983044
	Template int32 = 983045
	Necessary int32 = 983046
	Sufficient int32 = 983047
	AffectedNodes int32 = 983048
	Memos int32 = 983049
	NFTokens int32 = 983050
	Hooks int32 = 983051
	VoteSlots int32 = 983052
	AdditionalBooks int32 = 983053
	Majorities int32 = 983056
	DisabledValidators int32 = 983057
	HookExecutions int32 = 983058
	HookParameters int32 = 983059
	HookGrants int32 = 983060
	XChainClaimAttestations int32 = 983061
	XChainCreateAccountAttestations int32 = 983062
	PriceDataSeries int32 = 983064
	AuthAccounts int32 = 983065
	AuthorizeCredentials int32 = 983066
	UnauthorizeCredentials int32 = 983067
	AcceptedCredentials int32 = 983068
	Permissions int32 = 983069
	RawTransactions int32 = 983070
	BatchSigners int32 = 983071
	Paths int32 = 1179649
	Indexes int32 = 1245185
	Hashes int32 = 1245186
	Amendments int32 = 1245187
	NFTokenOffers int32 = 1245188
	CredentialIDs int32 = 1245189
	XChainBridge int32 = 1638401
	Transaction int32 = 655425793
	LedgerEntry int32 = 655491329
	Validation int32 = 655556865
	Metadata int32 = 655622401
)
