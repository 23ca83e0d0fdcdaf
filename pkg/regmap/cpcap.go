package regmap

// CPCAP audio block as exposed by the cpcap regmap on the Motorola mapphone
// family (Droid 4, Bionic, RAZR). Registers are 16 bits wide with a stride
// of 4, so the debugfs addresses are four hex digits.
var cpcapTable = MustTable(
	Register{ID: "0800", Name: "VAUDIOC", Bits: map[string]uint{
		"V_AUDIO_EN":   0,
		"VAUDIO_MODE0": 1,
		"VAUDIO_MODE1": 2,
		"VAUDIO_F":     4,
	}},
	Register{ID: "0804", Name: "CC", Bits: map[string]uint{
		"AUDIHPF_0":            0,
		"AUDIHPF_1":            1,
		"AUDOHPF_0":            2,
		"AUDOHPF_1":            3,
		"MIC1_CDC_EN":          4,
		"DF_RESET":             5,
		"CDC_EN_RX":            6,
		"MIC2_CDC_EN":          7,
		"CDC_CLOCK_TREE_RESET": 8,
		"CDC_SR0":              9,
		"CDC_SR1":              10,
		"CDC_SR2":              11,
		"CDC_SR3":              12,
		"CDC_CLK0":             13,
		"CDC_CLK1":             14,
		"CDC_CLK2":             15,
	}},
	Register{ID: "0808", Name: "CDI", Bits: map[string]uint{
		"SMB_CDC":           0,
		"CLK_INV":           1,
		"FS_INV":            2,
		"MIC1_RX_TIMESLOT0": 3,
		"MIC1_RX_TIMESLOT1": 4,
		"MIC1_RX_TIMESLOT2": 5,
		"MIC2_TIMESLOT0":    6,
		"MIC2_TIMESLOT1":    7,
		"MIC2_TIMESLOT2":    8,
		"CDC_DIG_AUD_FS0":   9,
		"CDC_DIG_AUD_FS1":   10,
		"CDC_CLK_EN":        11,
		"DIG_AUD_IN":        12,
		"CLK_IN_SEL":        13,
		"CDC_PLL_SEL":       15,
	}},
	Register{ID: "080c", Name: "SDAC", Bits: map[string]uint{
		"ST_DAC_EN":           0,
		"ST_DAC_CLK0":         1,
		"ST_DAC_CLK1":         2,
		"ST_DAC_CLK2":         3,
		"ST_SR0":              4,
		"ST_SR1":              5,
		"ST_SR2":              6,
		"ST_SR3":              7,
		"DF_RESET_ST_DAC":     8,
		"ST_CLOCK_TREE_RESET": 9,
		"SLAVE_PLL_CLK_INPUT": 10,
		"FSYNC_CLK_IN_COMMON": 11,
	}},
	Register{ID: "0810", Name: "SDACDI", Bits: map[string]uint{
		"SMB_ST_DAC":        0,
		"ST_CLK_EN":         1,
		"DIG_AUD_IN_ST_DAC": 2,
		"ST_DIG_AUD_FS0":    3,
		"ST_DIG_AUD_FS1":    4,
		"ST_CLK_INV":        5,
		"ST_FS_INV":         6,
		"ST_DAC_CLK_IN_SEL": 7,
		"ST_R_TIMESLOT0":    8,
		"ST_R_TIMESLOT1":    9,
		"ST_R_TIMESLOT2":    10,
		"ST_L_TIMESLOT0":    11,
		"ST_L_TIMESLOT1":    12,
		"ST_L_TIMESLOT2":    13,
	}},
	Register{ID: "0814", Name: "TXI", Bits: map[string]uint{
		"DLM":         0,
		"MIC1_PGA_EN": 1,
		"MIC1_MUX":    2,
		"HS_MIC_MUX":  3,
		"EMU_MIC_MUX": 4,
		"CDET_DIS":    5,
		"MIC2_PGA_EN": 6,
		"MIC2_MUX":    7,
		"RX_R_ENCODE": 8,
		"RX_L_ENCODE": 9,
		"MB_ON1R":     10,
		"MB_ON1L":     11,
		"MB_ON2":      12,
		"HS_ID_TX":    13,
		"PTT_CMP_EN":  14,
		"PTT_TH":      15,
	}},
	Register{ID: "0818", Name: "TXMP", Bits: map[string]uint{
		"MIC1_GAIN_0": 0,
		"MIC1_GAIN_1": 1,
		"MIC1_GAIN_2": 2,
		"MIC1_GAIN_3": 3,
		"MIC1_GAIN_4": 4,
		"MIC2_GAIN_0": 5,
		"MIC2_GAIN_1": 6,
		"MIC2_GAIN_2": 7,
		"MIC2_GAIN_3": 8,
		"MIC2_GAIN_4": 9,
		"MB_BIAS_R0":  10,
		"MB_BIAS_R1":  11,
	}},
	Register{ID: "081c", Name: "RXOA", Bits: map[string]uint{
		"A1_EAR_EN":             0,
		"A2_LDSP_R_EN":          1,
		"A2_LDSP_L_EN":          2,
		"A4_LINEOUT_R_EN":       3,
		"A4_LINEOUT_L_EN":       4,
		"HS_R_EN":               5,
		"HS_L_EN":               6,
		"EMU_SPKR_L_EN":         7,
		"EMU_SPKR_R_EN":         8,
		"ST_HS_CP_EN":           9,
		"HS_ID_RX":              10,
		"HS_LOW_PWR":            11,
		"STDAC_LOW_PWR_DISABLE": 12,
	}},
	Register{ID: "0820", Name: "RXVC", Bits: map[string]uint{
		"VOL_CDC_LSB_1DB0": 0,
		"VOL_CDC_LSB_1DB1": 1,
		"VOL_CDC0":         2,
		"VOL_CDC1":         3,
		"VOL_CDC2":         4,
		"VOL_CDC3":         5,
		"VOL_DAC_LSB_1DB0": 6,
		"VOL_DAC_LSB_1DB1": 7,
		"VOL_DAC0":         8,
		"VOL_DAC1":         9,
		"VOL_DAC2":         10,
		"VOL_DAC3":         11,
		"VOL_EXT0":         12,
		"VOL_EXT1":         13,
		"VOL_EXT2":         14,
		"VOL_EXT3":         15,
	}},
	Register{ID: "0824", Name: "RXCOA", Bits: map[string]uint{
		"A1_EAR_CDC_SW":         0,
		"A2_LDSP_R_CDC_SW":      1,
		"A2_LDSP_L_CDC_SW":      2,
		"A4_LINEOUT_R_CDC_SW":   3,
		"A4_LINEOUT_L_CDC_SW":   4,
		"ARIGHT_HS_CDC_SW":      5,
		"ALEFT_HS_CDC_SW":       6,
		"PGA_OUTL_USBDN_CDC_SW": 7,
		"PGA_OUTR_USBDP_CDC_SW": 8,
		"CDC_SW":                9,
		"PGA_CDC_EN":            10,
	}},
	Register{ID: "0828", Name: "RXSDOA", Bits: map[string]uint{
		"A1_EAR_DAC_SW":         0,
		"A2_LDSP_R_DAC_SW":      1,
		"A2_LDSP_L_DAC_SW":      2,
		"A4_LINEOUT_R_DAC_SW":   3,
		"A4_LINEOUT_L_DAC_SW":   4,
		"ARIGHT_HS_DAC_SW":      5,
		"ALEFT_HS_DAC_SW":       6,
		"PGA_OUTL_USBDN_DAC_SW": 7,
		"PGA_OUTR_USBDP_DAC_SW": 8,
		"MONO_DAC0":             9,
		"MONO_DAC1":             10,
		"ST_DAC_SW":             11,
		"PGA_DAC_EN":            12,
	}},
	Register{ID: "082c", Name: "RXEPOA", Bits: map[string]uint{
		"A1_EAR_EXT_SW":         0,
		"A2_LDSP_R_EXT_SW":      1,
		"A2_LDSP_L_EXT_SW":      2,
		"A4_LINEOUT_R_EXT_SW":   3,
		"A4_LINEOUT_L_EXT_SW":   4,
		"ARIGHT_HS_EXT_SW":      5,
		"ALEFT_HS_EXT_SW":       6,
		"PGA_OUTL_USBDN_EXT_SW": 7,
		"PGA_OUTR_USBDP_EXT_SW": 8,
		"MONO_EXT0":             9,
		"MONO_EXT1":             10,
		"PGA_IN_R_SW":           11,
		"PGA_IN_L_SW":           12,
		"PGA_EXT_R_EN":          13,
		"PGA_EXT_L_EN":          14,
	}},
	// No bit definitions yet; these decode to empty bitfields.
	Register{ID: "0830", Name: "RXLL"},
	Register{ID: "0834", Name: "A2LA"},
)

// CPCAP returns the built-in CPCAP audio codec table.
func CPCAP() *Table { return cpcapTable }
