package token2022

import "testing"

func TestMintLen_NoExtensions(t *testing.T) {
	if got := MintLen(); got != 82 {
		t.Errorf("expected base mint length 82, got %d", got)
	}
}

func TestMintLen_SingleExtension(t *testing.T) {
	cases := []struct {
		ext      ExtensionType
		expected int
	}{
		// 165 base + 1 account type + 4 TLV header + state size
		{ExtensionTransferFeeConfig, 165 + 1 + 4 + 108},
		{ExtensionMintCloseAuthority, 165 + 1 + 4 + 32},
		{ExtensionNonTransferable, 165 + 1 + 4 + 0},
		{ExtensionInterestBearingConfig, 165 + 1 + 4 + 52},
		{ExtensionPermanentDelegate, 165 + 1 + 4 + 32},
		{ExtensionDefaultAccountState, 165 + 1 + 4 + 1},
		{ExtensionTransferHook, 165 + 1 + 4 + 64},
		{ExtensionMetadataPointer, 165 + 1 + 4 + 64},
		{ExtensionScaledUiAmountConfig, 165 + 1 + 4 + 56},
		{ExtensionPausableConfig, 165 + 1 + 4 + 33},
	}
	for _, tc := range cases {
		if got := MintLen(tc.ext); got != tc.expected {
			t.Errorf("extension %d: expected %d, got %d", tc.ext, tc.expected, got)
		}
	}
}

func TestMintLen_MultipleExtensions(t *testing.T) {
	got := MintLen(ExtensionGroupPointer, ExtensionTokenGroup)
	expected := 165 + 1 + (4 + 64) + (4 + 72)
	if got != expected {
		t.Errorf("expected %d, got %d", expected, got)
	}
}

func TestAccountLen_Extensions(t *testing.T) {
	if got := AccountLen(); got != 165 {
		t.Errorf("expected base account length 165, got %d", got)
	}
	if got := AccountLen(ExtensionImmutableOwner); got != 165+1+4 {
		t.Errorf("expected %d, got %d", 165+1+4, got)
	}
	if got := AccountLen(ExtensionMemoTransfer); got != 165+1+4+1 {
		t.Errorf("expected %d, got %d", 165+1+4+1, got)
	}
}

func TestMetadataLen(t *testing.T) {
	// header(4) + authority(32) + mint(32) + 3 length-prefixed strings + empty vec(4)
	got := MetadataLen("Test", "TST", "https://example.com/t.json")
	expected := 4 + 64 + (4 + 4) + (4 + 3) + (4 + 26) + 4
	if got != expected {
		t.Errorf("expected %d, got %d", expected, got)
	}
}
