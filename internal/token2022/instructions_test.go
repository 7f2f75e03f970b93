package token2022

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"math"
	"testing"

	"github.com/gagliardetto/solana-go"
)

var (
	testMint      = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	testAuthority = solana.MustPublicKeyFromBase58("Vote111111111111111111111111111111111111111")
)

func instructionData(t *testing.T, ix solana.Instruction) []byte {
	t.Helper()
	data, err := ix.Data()
	if err != nil {
		t.Fatalf("instruction data: %v", err)
	}
	return data
}

func TestInitializeMint2_NoFreezeAuthority(t *testing.T) {
	ix := InitializeMint2(testMint, testAuthority, nil, 6)

	data := instructionData(t, ix)
	if data[0] != ixInitializeMint2 {
		t.Errorf("expected discriminant %d, got %d", ixInitializeMint2, data[0])
	}
	if data[1] != 6 {
		t.Errorf("expected decimals 6, got %d", data[1])
	}
	if !bytes.Equal(data[2:34], testAuthority.Bytes()) {
		t.Error("mint authority mismatch")
	}
	// COption::None is a single zero byte
	if len(data) != 35 || data[34] != 0 {
		t.Errorf("expected trailing None tag, got %v", data[34:])
	}

	accounts := ix.Accounts()
	if len(accounts) != 1 || !accounts[0].PublicKey.Equals(testMint) || !accounts[0].IsWritable {
		t.Errorf("expected single writable mint account, got %+v", accounts)
	}
}

func TestInitializeMint2_WithFreezeAuthority(t *testing.T) {
	freeze := testAuthority
	ix := InitializeMint2(testMint, testAuthority, &freeze, 0)

	data := instructionData(t, ix)
	if len(data) != 67 {
		t.Fatalf("expected 67 bytes, got %d", len(data))
	}
	if data[34] != 1 {
		t.Errorf("expected Some tag, got %d", data[34])
	}
	if !bytes.Equal(data[35:67], freeze.Bytes()) {
		t.Error("freeze authority mismatch")
	}
}

func TestInitializeTransferFeeConfig_Encoding(t *testing.T) {
	ix := InitializeTransferFeeConfig(testMint, &testAuthority, &testAuthority, 50, 5000)

	data := instructionData(t, ix)
	if data[0] != ixTransferFeeExtension || data[1] != 0 {
		t.Fatalf("expected [26 0] prefix, got %v", data[:2])
	}
	// two Some COptions, then bps u16, then max fee u64
	off := 2
	for i := 0; i < 2; i++ {
		if data[off] != 1 {
			t.Fatalf("authority %d: expected Some tag", i)
		}
		off += 33
	}
	if bps := binary.LittleEndian.Uint16(data[off:]); bps != 50 {
		t.Errorf("expected bps 50, got %d", bps)
	}
	off += 2
	if maxFee := binary.LittleEndian.Uint64(data[off:]); maxFee != 5000 {
		t.Errorf("expected max fee 5000, got %d", maxFee)
	}
	if len(data) != off+8 {
		t.Errorf("unexpected trailing bytes: %d", len(data)-off-8)
	}
}

func TestInitializeInterestBearingMint_NegativeRate(t *testing.T) {
	ix := InitializeInterestBearingMint(testMint, nil, -500)

	data := instructionData(t, ix)
	if data[0] != ixInterestBearingMintExtension || data[1] != 0 {
		t.Fatalf("expected [33 0] prefix, got %v", data[:2])
	}
	// rate authority is an all-zero OptionalNonZeroPubkey
	if !bytes.Equal(data[2:34], make([]byte, 32)) {
		t.Error("expected zeroed rate authority")
	}
	rate := int16(binary.LittleEndian.Uint16(data[34:36]))
	if rate != -500 {
		t.Errorf("expected rate -500, got %d", rate)
	}
}

func TestInitializeNonTransferableMint_NoArgs(t *testing.T) {
	ix := InitializeNonTransferableMint(testMint)
	data := instructionData(t, ix)
	if len(data) != 1 || data[0] != ixInitializeNonTransferableMint {
		t.Errorf("expected single discriminant byte, got %v", data)
	}
}

func TestInitializeScaledUiAmount_Multiplier(t *testing.T) {
	ix := InitializeScaledUiAmount(testMint, &testAuthority, 1.5)
	data := instructionData(t, ix)
	got := math.Float64frombits(binary.LittleEndian.Uint64(data[34:42]))
	if got != 1.5 {
		t.Errorf("expected multiplier 1.5, got %f", got)
	}
}

func TestMintToChecked_Encoding(t *testing.T) {
	dest := solana.MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")
	ix := MintToChecked(testMint, dest, testAuthority, 10000, 6)

	data := instructionData(t, ix)
	if data[0] != ixMintToChecked {
		t.Fatalf("expected discriminant %d, got %d", ixMintToChecked, data[0])
	}
	if amount := binary.LittleEndian.Uint64(data[1:9]); amount != 10000 {
		t.Errorf("expected amount 10000, got %d", amount)
	}
	if data[9] != 6 {
		t.Errorf("expected decimals 6, got %d", data[9])
	}

	accounts := ix.Accounts()
	if !accounts[2].IsSigner {
		t.Error("mint authority must be a signer")
	}
}

func TestEnableRequiredMemoTransfers_OwnerSigns(t *testing.T) {
	account := solana.MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")
	ix := EnableRequiredMemoTransfers(account, testAuthority)

	data := instructionData(t, ix)
	if !bytes.Equal(data, []byte{ixMemoTransferExtension, 0}) {
		t.Errorf("expected [30 0], got %v", data)
	}
	accounts := ix.Accounts()
	if !accounts[0].IsWritable || !accounts[1].IsSigner {
		t.Errorf("expected writable account + signing owner, got %+v", accounts)
	}
}

func TestDiscriminators_MatchPublishedValues(t *testing.T) {
	cases := []struct {
		namespace string
		expected  string
	}{
		{nsMetadataInitialize, "d2e11ea258b84d8d"},
		{nsGroupInitialize, "79716c2736330004"},
		{nsMemberInitialize, "9820deb0dfed7486"},
	}
	for _, tc := range cases {
		got := hex.EncodeToString(Discriminator(tc.namespace))
		if got != tc.expected {
			t.Errorf("%s: expected %s, got %s", tc.namespace, tc.expected, got)
		}
	}
}

func TestInitializeTokenMetadata_BorshStrings(t *testing.T) {
	ix, err := InitializeTokenMetadata(testMint, testAuthority, testMint, testAuthority, "Test", "TST", "https://example.com/t.json")
	if err != nil {
		t.Fatalf("InitializeTokenMetadata: %v", err)
	}

	data := instructionData(t, ix)
	if hex.EncodeToString(data[:8]) != "d2e11ea258b84d8d" {
		t.Fatalf("wrong discriminator: %x", data[:8])
	}
	// borsh string: u32 LE length + bytes
	if nameLen := binary.LittleEndian.Uint32(data[8:12]); nameLen != 4 {
		t.Errorf("expected name length 4, got %d", nameLen)
	}
	if string(data[12:16]) != "Test" {
		t.Errorf("expected name Test, got %q", data[12:16])
	}

	accounts := ix.Accounts()
	if len(accounts) != 4 {
		t.Fatalf("expected 4 accounts, got %d", len(accounts))
	}
	if !accounts[3].IsSigner {
		t.Error("mint authority must sign metadata initialization")
	}
}

func TestFindAssociatedTokenAddress_Deterministic(t *testing.T) {
	wallet := solana.MustPublicKeyFromBase58("Vote111111111111111111111111111111111111111")

	a, err := FindAssociatedTokenAddress(wallet, testMint)
	if err != nil {
		t.Fatalf("FindAssociatedTokenAddress: %v", err)
	}
	b, err := FindAssociatedTokenAddress(wallet, testMint)
	if err != nil {
		t.Fatalf("FindAssociatedTokenAddress: %v", err)
	}
	if !a.Equals(b) {
		t.Error("derivation must be deterministic")
	}
	if a.IsZero() {
		t.Error("derived address must not be zero")
	}
}
