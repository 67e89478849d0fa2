package macsxls

// Fixture files covering the MACS output variants the loader has to
// understand: MACS 1.4 (no command line, plain summit column), MACS
// 2.0.10 without a recorded command line, MACS 2.0.10 with one, and a
// MACS 2.0.10 --broad run (no abs_summit column).

const macs14Fixture = `# This file is generated by MACS version 1.4.0beta
# ARGUMENTS LIST:
# name = AS_Rb_Pmad_2_vs_Rb_PI_2_mfold_10-30_Plt1e-5_bw350_MACS14
# format = BED
# ChIP-seq file = solid0424_20101108_FRAG_BC_2_AS_COMBINED_F3_AS_Rb_Pmad_2.unique.csfasta.ma.50.5.bed
# control file = solid0424_20101108_FRAG_BC_2_AS_COMBINED_F3_AS_Rb_PI_2.unique.csfasta.ma.50.5.bed
# effective genome size = 1.20e+08
# band width = 350
# model fold = 10,30
# pvalue cutoff = 1.00e-05
# Range for calculating regional lambda is: 1000 bps and 10000 bps

# tag size is determined as 50 bps
# total tags in treatment: 9541851
# tags after filtering in treatment: 6005978
# maximum duplicate tags at the same position in treatment = 3
# Redundant rate in treatment: 0.37
# total tags in control: 10600387
# tags after filtering in control: 5190513
# maximum duplicate tags at the same position in control = 3
# Redundant rate in control: 0.51
# d = 200
chr	start	end	length	summit	tags	-10*log10(pvalue)	fold_enrichment	FDR(%)
chr2L	25639	29124	3486	2465	411	297.14	4.72	68.59
chr2L	66243	67598	1356	674	158	156.31	3.73	83.24
chr2L	88564	93752	5189	2934	933	1556.88	7.94	23.40
chr2L	99358	100787	1430	450	142	84.72	4.03	81.71
chr2L	248030	252120	4091	1126	621	129.90	3.97	86.04`

const macs2NoCmdFixture = `# This file is generated by MACS version 2.0.10.20130419 (tag:beta)
# ARGUMENTS LIST:
# name = Gli1_ChIP_vs_input_36bp_bowtie_mm10_BASE_mfold5,50_Pe-5_Q0.05_bw250_MACS2
# format = BED
# ChIP-seq file = ['Gli1_ChIP_NH1_36bp.fastq_bowtie_m1n2l28_mm10_random_chrM_chrUn_sorted_BASE.bed']
# control file = ['Gli1_Input_NH2_36bp.fastq_bowtie_m1n2l28_mm10_random_chrM_chrUn_sorted_BASE.bed']
# effective genome size = 1.87e+09
# band width = 250
# model fold = [5, 50]
# qvalue cutoff = 5.00e-02
# Larger dataset will be scaled towards smaller dataset.
# Range for calculating regional lambda is: 1000 bps and 10000 bps
# Broad region calling is off

# tag size is determined as 36 bps
# total tags in treatment: 22086203
# tags after filtering in treatment: 5306676
# maximum duplicate tags at the same position in treatment = 1
# Redundant rate in treatment: 0.76
# total tags in control: 24403248
# tags after filtering in control: 15259969
# maximum duplicate tags at the same position in control = 1
# Redundant rate in control: 0.37
# d = 148
# alternative fragment length(s) may be 148 bps
chr	start	end	length	abs_summit	pileup	-log10(pvalue)	fold_enrichment	-log10(qvalue)	name
chr1	11739723	11739870	148	11739812	7.00000	7.76684	5.62653	3.43962	Gli1_MACS2_peak_1
chr1	11969836	11970017	182	11969905	12.00000	14.83738	9.14312	9.72638	Gli1_MACS2_peak_2
chr1	12644697	12644846	150	12644743	8.00000	9.09804	6.32985	4.55480	Gli1_MACS2_peak_3
chr1	14307437	14307618	182	14307533	9.00000	10.15992	6.87334	5.55297	Gli1_MACS2_peak_4
chr1	14729977	14730124	148	14730003	9.00000	10.47462	7.03317	5.76536	Gli1_MACS2_peak_5`

const macs2Fixture = `# This file is generated by MACS version 2.0.10.20131216 (tag:beta)
# Command line: callpeak --treatment=NW-H3K27ac-chIP_E13.5.bed --control=NW-H3K27ac-input_E13.5.bed --name=NW-H3K27ac-chIP_vs_input_E13.5_MACS2.0.10b --format=BED --gsize=mm --bw=300 --qvalue=0.05 --mfold 5 50
# ARGUMENTS LIST:
# name = NW-H3K27ac-chIP_vs_input_E13.5_MACS2.0.10b
# format = BED
# ChIP-seq file = ['NW-H3K27ac-chIP_E13.5.bed']
# control file = ['NW-H3K27ac-input_E13.5.bed']
# effective genome size = 1.87e+09
# band width = 300
# model fold = [5, 50]
# qvalue cutoff = 5.00e-02
# Larger dataset will be scaled towards smaller dataset.
# Range for calculating regional lambda is: 1000 bps and 10000 bps
# Broad region calling is off

# tag size is determined as 50 bps
# total tags in treatment: 34761982
# tags after filtering in treatment: 25719667
# maximum duplicate tags at the same position in treatment = 1
# Redundant rate in treatment: 0.26
# total tags in control: 35952332
# tags after filtering in control: 32648707
# maximum duplicate tags at the same position in control = 1
# Redundant rate in control: 0.09
# d = 255
# alternative fragment length(s) may be 255 bps
chr	start	end	length	abs_summit	pileup	-log10(pvalue)	fold_enrichment	-log10(qvalue)	name
chr1	4785302	4786361	1060	4785978	31.00	19.45588	7.09971	16.36880	NW-H3K27ac_peak_1
chr1	4857168	4857694	527	4857404	29.00	17.54599	6.65598	14.52698	NW-H3K27ac_peak_2
chr1	4858211	4858495	285	4858423	18.00	8.17111	4.21545	5.55648	NW-H3K27ac_peak_3
chr1	5082969	5083594	626	5083453	21.00	10.51344	4.88105	7.78195	NW-H3K27ac_peak_4
chr1	6214126	6215036	911	6214792	56.00	47.04091	12.64636	43.11036	NW-H3K27ac_peak_5`

const macs2BroadFixture = `# This file is generated by MACS version 2.0.10.20131216 (tag:beta)
# Command line: callpeak --treatment=NW-H3K27ac-chIP_E13.5.bed --control=NW-H3K27ac-input_E13.5.bed --name=NW-H3K27ac-chIP_vs_input_E13.5_broad_MACS2.0.10b --format=BED --gsize=mm --bw=300 --qvalue=0.05 --mfold 5 50 --broad --bdg
# ARGUMENTS LIST:
# name = NW-H3K27ac-chIP_vs_input_E13.5_broad_MACS2.0.10b
# format = BED
# ChIP-seq file = ['NW-H3K27ac-chIP_E13.5.bed']
# control file = ['NW-H3K27ac-input_E13.5.bed']
# effective genome size = 1.87e+09
# band width = 300
# model fold = [5, 50]
# qvalue cutoff = 5.00e-02
# Larger dataset will be scaled towards smaller dataset.
# Range for calculating regional lambda is: 1000 bps and 10000 bps
# Broad region calling is on

# tag size is determined as 50 bps
# total tags in treatment: 34761982
# tags after filtering in treatment: 25719667
# maximum duplicate tags at the same position in treatment = 1
# Redundant rate in treatment: 0.26
# total tags in control: 35952332
# tags after filtering in control: 32648707
# maximum duplicate tags at the same position in control = 1
# Redundant rate in control: 0.09
# d = 255
# alternative fragment length(s) may be 255 bps
chr	start	end	length	pileup	-log10(pvalue)	fold_enrichment	-log10(qvalue)	name
chr1	4571604	4572035	432	11.81	4.00624	2.84289	1.70591	NW-H3K27ac_broad_peak_1
chr1	4784978	4786450	1473	19.42	9.53551	4.45015	6.90879	NW-H3K27ac_broad_peak_2
chr1	4857160	4858622	1463	18.48	8.80420	4.28339	6.20234	NW-H3K27ac_broad_peak_3
chr1	5082969	5083609	641	16.57	7.03857	3.82006	4.50602	NW-H3K27ac_broad_peak_4
chr1	6214118	6215462	1345	25.10	15.08276	5.78500	12.23221	NW-H3K27ac_broad_peak_5`
