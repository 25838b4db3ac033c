package dtopi

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hep/internal/specfun"
)

// Next-to-leading-order gluon corrections to the f_+ correlator. The
// hard-scattering kernels below are the imaginary parts of the
// one-loop amplitude, integrated over the light-cone variable rho and
// expressed in r1 = q2 / mc^2 and r2 = s / mc^2. The coefficient
// polynomials follow Appendix B of DKMMO2008.

func pow2(x float64) float64 { return x * x }

func pow3(x float64) float64 { return x * x * x }

func pow4(x float64) float64 {
	x2 := x * x
	return x2 * x2
}

func pow6(x float64) float64 {
	x2 := x * x
	return x2 * x2 * x2
}

func pow7(x float64) float64 {
	x2 := x * x
	return x2 * x2 * x2 * x
}

func pow8(x float64) float64 {
	x4 := pow4(x)
	return x4 * x4
}

// t1Tw2Theta1mRho is the twist-2 kernel proportional to theta(1 - rho).
// lmu is log(mc^2 / mu^2).
func t1Tw2Theta1mRho(r1, r2, a2, a4, lmu float64) float64 {
	r12 := r1 * r1
	r13 := r12 * r1
	r14 := r12 * r12
	r15 := r14 * r1
	r22 := r2 * r2
	r23 := r22 * r2
	r24 := r22 * r22
	r25 := r24 * r2
	l := lmu + math.Log(pow2(r2-1.0)/r2)

	ca0 := pow4(r1-r2) * (-3.0 + r1 + r2*2.0)
	ca2 := pow2(r1-r2) * ((-125.0 + r1*155.0 - r12*43.0 + r13) +
		r2*(220.0-r1*224.0+r12*40.0) +
		r22*(-108.0+72.0*r1) +
		r23*12.0)
	ca4 := (-3087.0 + r1*6804.0 - r12*5096.0 + r13*1484.0 - r14*136.0 + r15) +
		r2*(8631.0-17024.0*r1+10836.0*r12-2424.0*r13+131.0*r14) +
		r22*(-8750.0+14700.0*r1-7200.0*r12+950.0*r13) +
		r23*(3850.0-r1*5000.0+r12*1450.0) +
		r24*(-675.0+r1*525.0) +
		r25*30.0

	cb0 := pow4(r1 - r2)
	cb2 := pow2(r1-r2) * (15.0 - r1*10.0 + r12 + r2*(-20.0+r1*8.0) + r22*6.0)
	cb4 := (210.0 - r1*336.0 + r12*168.0 - r13*28.0 + r14) +
		r2*(-504.0+r1*672.0-r12*252.0+r13*24.0) +
		r22*(420.0-r1*420.0+r12*90.0) +
		r23*(-140.0+r1*80.0) +
		r24*15.0

	return ((r1-r2)*(l-1.0/r2)*(ca0+ca2*a2+ca4*a4) +
		(r1-1.0)*(1.0/r2-1.0)*(r2-r1)*(cb0+cb2*a2+cb4*a4) +
		(1.0-r1)*(r1-1.0)*(l-1.0)*(cb0+cb2*a2+cb4*a4)) * (r1 - 1.0) * 3.0 / pow8(r1-r2)
}

// t1Tw2ThetaRhom1 is the twist-2 kernel proportional to theta(rho - 1).
func t1Tw2ThetaRhom1(r1, r2, a2, a4, lmu float64) float64 {
	r12 := r1 * r1
	r13 := r12 * r1
	r14 := r12 * r12
	r15 := r14 * r1
	r16 := r13 * r13
	r22 := r2 * r2
	r23 := r22 * r2
	r24 := r22 * r22
	r25 := r24 * r2
	r26 := r23 * r23
	r27 := r24 * r23
	r28 := r24 * r24
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)

	ca00 := (-r1*4.0 + r12*4.0) +
		r2*(3.0+r1*12.0-r12*12.0) +
		r22*(-13.0-r1*4.0+r12*8.0) +
		r23*(13.0-r1*4.0) -
		r24*3.0
	ca0mu := r2*(1.0-r1*3.0+r12*2.0) +
		r22*(r1*2.0-r12*2.0) +
		r23*(-1.0+r1)
	ca0r2 := r2*(-1.0+r12) +
		r22*(3.0-r1*4.0+r12)
	ca0r2m1 := 2.0 * ca0mu

	ca20 := (r1*1680.0 - r12*3120.0 + r13*1728.0 - r14*288.0) +
		r2*(-1500.0-r1*8675.0+r12*17308.0-r13*8208.0+r14*864.0) +
		r22*(10895.0+r1*2160.0-r12*21084.0+r13*10080.0-r14*576.0) +
		r23*(-19396.0+r1*15264.0+r12*5412.0-r13*3600.0) +
		r24*(12516.0-r1*12880.0+r12*1484.0) +
		r25*(-2576.0+r1*2451.0) +
		r26*61.0
	ca2mu := r2*(-180.0+r1*1740.0-r12*2712.0+r13*1296.0-r14*144.0) +
		r22*(-840.0-r1*1536.0+r12*4248.0-r13*2016.0+r14*144.0) +
		r23*(2448.0-r1*1944.0-r12*1224.0+r13*720.0) +
		r24*(-1800.0+r1*2112.0-r12*312.0) +
		r25*(372.0-r1*372.0)
	ca2r2 := r2*(180.0+r1*840.0-r12*1728.0+r13*720.0-r14*72.0) +
		r22*(-1740.0+r1*1536.0+r12*144.0+r13*432.0-r14*72.0) +
		r23*(1992.0-r1*2448.0+r12*1512.0-r13*576.0) +
		r24*(-216.0-r1*672.0+r12*168.0) +
		r25*(-300.0+r1*300.0)
	ca2r2m1 := 2.0 * ca2mu

	ca40 := r1*98910.0 - r12*281610.0 + r13*294000.0 - r14*136500.0 + r15*27000.0 - r16*1800.0 +
		r2*(-92610.0-r1*628467.0+r12*2091411.0-r13*2110325.0+r14*869950.0-r15*136800.0+r16*5400.0) +
		r22*(865977.0-r1*51660.0-r12*3323460.0+r13*3765400.0-r14*1417650.0+r15*181800.0-r16*3600.0) +
		r23*(-2201451.0+r1*2911860.0+r12*894420.0-r13*2358600.0+r14*840450.0-r15*72000.0) +
		r24*(2437925.0-r1*4042510.0+r12*1372230.0+r13*345800.0-r14*156250.0) +
		r25*(-1293760.0+r1*2102595.0-r12*890655.0+r13*63725.0) +
		r26*(307725.0-r1*414708.0+r12*137664.0) +
		r27*(-23987.0+r1*23980.0) +
		r28*181.0
	ca4mu := r2*(-6300.0+r1*107730.0-r12*271530.0+r13*266700.0-r14*115950.0+r15*20250.0-r16*900.0) +
		r22*(-63630.0-r1*103320.0+r12*557550.0-r13*603000.0+r14*246600.0-r15*35100.0+r16*900.0) +
		r23*(242550.0-r1*299250.0-r12*210600.0+r13*411300.0-r14*158850.0+r15*14850.0) +
		r24*(-304500.0+r1*539400.0-r12*200700.0-r13*62400.0+r14*28200.0) +
		r25*(169650.0-r1*304200.0+r12*147150.0-r13*12600.0) +
		r26*(-40950.0+r1*62820.0-r12*21870.0) +
		r27*(3180.0-r1*3180.0)
	ca4r2 := r2*(6300.0+r1*63630.0-r12*204750.0+r13*210000.0-r14*87750.0+r15*12600.0-r16*450.0) +
		r22*(-107730.0+r1*103320.0+r12*166950.0-r13*237000.0+r14*74250.0+r15*3600.0-r16*450.0) +
		r23*(233730.0-r1*425250.0+r12*210600.0-r13*45000.0+r14*65700.0-r15*10800.0) +
		r24*(-172200.0+r1*300600.0-r12*165600.0+r13*71400.0-r14*23700.0) +
		r25*(34050.0-r1*16650.0-r12*54900.0+r13*8100.0) +
		r26*(8100.0-r1*38520.0+r12*17820.0) +
		r27*(-2730.0+r1*2730.0)
	ca4r2m1 := 2.0 * ca4mu

	return -3.0/(r2*pow4(r1-r2))*(ca00+ca0mu*lmu+ca0r2*lr2+ca0r2m1*lr2m1) +
		1.0/(4.0*r2*pow6(r1-r2))*(ca20+ca2mu*lmu+ca2r2*lr2+ca2r2m1*lr2m1)*a2 +
		1.0/(10.0*r2*pow8(r1-r2))*(ca40+ca4mu*lmu+ca4r2*lr2+ca4r2m1*lr2m1)*a4
}

// t1Tw2Delta is the twist-2 kernel proportional to delta(rho - 1).
func t1Tw2Delta(r1, r2, a2, a4, lmu float64) float64 {
	pi2 := math.Pi * math.Pi

	r12 := r1 * r1
	r13 := r12 * r1
	r14 := r12 * r12
	r15 := r13 * r12
	r22 := r2 * r2
	r23 := r22 * r2
	r24 := r22 * r22
	r25 := r23 * r22
	r26 := r23 * r23
	l1mr1 := math.Log(1.0 - r1)
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	l1mr12 := l1mr1 * l1mr1
	lr2m12 := lr2m1 * lr2m1
	dilogr1 := specfun.Dilog(r1)
	dilog1mr2 := specfun.Dilog(1.0 - r2)

	// the single-log and double-log structures multiplying the r1 and
	// r1^2 coefficient polynomials
	logs1 := l1mr1 - 2.0*lr2m1
	logs2 := l1mr12 + lr2m12 - 2.0*lr2*lr2m1 + l1mr1*(lr2-2.0*lr2m1) + dilogr1 - 3.0*dilog1mr2

	ca00 := r2*(18.0+pi2-r1*(10.0+pi2)) + r22*(-10.0-pi2+r1*(2.0+pi2))
	ca0mu := r2*(-15.0+r1*9.0) + r22*(9.0-r1*3.0)
	ca0r1 := -2.0 + r1*2.0 + r2*(4.0-r1*4.0) + r22*(-2.0+r1*2.0)
	ca0r12 := r2*(-2.0+r1*2.0) + r22*(2.0-r1*2.0)

	ca20 := r2*(5.0*(34.0+pi2)-r1*10.0*(26.0+pi2)+r12*6.0*(18.0+pi2)+r13*(-10.0-pi2)) +
		r22*(-10.0*(26.0+pi2)+r1*18.0*(18.0+pi2)-r12*9.0*(10.0+pi2)+r13*(2.0+pi2)) +
		r23*(6.0*(18.0+pi2)-r1*9.0*(10.0+pi2)+r12*3.0*(2.0+pi2)) +
		r24*(-10.0-pi2+r1*(2.0+pi2))
	ca2mu := r2*(-135.0+r1*210.0-r12*90.0+r13*9.0) +
		r22*(210.0-r1*270.0+r12*81.0-r13*3.0) +
		r23*(-90.0+r1*81.0-r12*9.0) +
		r24*(9.0-r1*3.0)
	ca2r1 := -10.0 + r1*20.0 - r12*12.0 + r13*2.0 +
		r2*(30.0-r1*56.0+r12*30.0-r13*4.0) +
		r22*(-32.0+r1*54.0-r12*24.0+r13*2.0) +
		r23*(14.0-r1*20.0+r12*6.0) +
		r24*(-2.0+r1*2.0)
	ca2r12 := r2*(-10.0+r1*20.0-r12*12.0+r13*2.0) +
		r22*(20.0-r1*36.0+r12*18.0-r13*2.0) +
		r23*(-12.0+r1*18.0-r12*6.0) +
		r24*(2.0-r1*2.0)

	ca40 := r2*(42.0*(50.0+pi2)-r1*126.0*(42.0+pi2)+r12*140.0*(34.0+pi2)-r13*70.0*(26.0+pi2)+r14*15.0*(18.0+pi2)+r15*(-10.0-pi2)) +
		r22*(-126.0*(42.0+pi2)+r1*350.0*(34.0+pi2)-r12*350.0*(26.0+pi2)+r13*150.0*(18.0+pi2)-r14*25.0*(10.0+pi2)+r15*(2.0+pi2)) +
		r23*(140.0*(34.0+pi2)-r1*350.0*(26.0+pi2)+r12*300.0*(18.0+pi2)-r13*100.0*(10.0+pi2)+r14*10.0*(2.0+pi2)) +
		r24*(-70.0*(26.0+pi2)+r1*150.0*(18.0+pi2)-r12*100.0*(10.0+pi2)+r13*20.0*(2.0+pi2)) +
		r25*(15.0*(18.0+pi2)-r1*25.0*(10.0+pi2)+r12*10.0*(2.0+pi2)) +
		r26*(-10.0-pi2+r1*(2.0+pi2))
	ca4mu := r2*(-1638.0+r1*4158.0-r12*3780.0+r13*1470.0-r14*225.0+r15*9.0) +
		r22*(4158.0-r1*9450.0+r12*7350.0-r13*2250.0+r14*225.0-r15*3.0) +
		r23*(-3780.0+r1*7350.0-r12*4500.0+r13*900.0-r14*30.0) +
		r24*(1470.0-r1*2250.0+r12*900.0-r13*60.0) +
		r25*(-225.0+r1*225.0-r12*30.0) +
		r26*(9.0-r1*3.0)
	ca4r1 := -84.0 + r1*252.0 - r12*280.0 + r13*140.0 - r14*30.0 + r15*2.0 +
		r2*(336.0-r1*952.0+r12*980.0-r13*440.0+r14*80.0-r15*4.0) +
		r22*(-532.0+r1*1400.0-r12*1300.0+r13*500.0-r14*70.0+r15*2.0) +
		r23*(420.0-r1*1000.0+r12*800.0-r13*240.0+r14*20.0) +
		r24*(-170.0+r1*350.0-r12*220.0+r13*40.0) +
		r25*(32.0-r1*52.0+r12*20.0) +
		r26*(-2.0+r1*2.0)
	ca4r12 := r2*(-84.0+r1*252.0-r12*280.0+r13*140.0-r14*30.0+r15*2.0) +
		r22*(252.0-r1*700.0+r12*700.0-r13*300.0+r14*50.0-r15*2.0) +
		r23*(-280.0+r1*700.0-r12*600.0+r13*200.0-r14*20.0) +
		r24*(140.0-r1*300.0+r12*200.0-r13*40.0) +
		r25*(-30.0+r1*50.0-r12*20.0) +
		r26*(2.0-r1*2.0)

	return -3.0 / (r2 * pow7(r1-r2)) * (pow4(r1-r2)*(ca00+ca0mu*lmu+ca0r1*logs1+ca0r12*logs2) +
		6.0*pow2(r1-r2)*(ca20+ca2mu*lmu+ca2r1*logs1+ca2r12*logs2)*a2 +
		15.0*(ca40+ca4mu*lmu+ca4r1*logs1+ca4r12*logs2)*a4)
}

func (ff *FormFactor) fNloTw2(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	const eps = 1e-12

	a2 := ff.pion.A2(k.mu)
	a4 := ff.pion.A4(k.mu)
	r1 := q2 / k.mc2
	lmu := math.Log(k.mc2 / (k.mu * k.mu))

	integrand := func(r2 float64) float64 {
		weight := (1.0 - selectWeight) + selectWeight*k.mc2*r2

		return -2.0 * (t1Tw2ThetaRhom1(r1, r2, a2, a4, lmu) +
			t1Tw2Theta1mRho(r1, r2, a2, a4, lmu) +
			t1Tw2Delta(r1, r2, a2, a4, lmu)) * weight * math.Exp(-k.mc2*r2/m2)
	}

	integral, err := ff.integrator.Integrate(integrand, 1.0+eps, ff.s0D(q2)/k.mc2)
	if err != nil {
		return 0, fmt.Errorf("twist-2 next-to-leading order: %w", err)
	}

	return k.mc2 * k.fpi * integral, nil
}

// Twist-3 kernels. The two-particle distribution amplitudes phi3p and
// phi3s enter in their asymptotic form, so the kernels depend only on
// r1, r2 and the renormalization log.

func t1Tw3PTheta1mRho(r1, r2, lmu float64) float64 {
	l1 := math.Log((r2 - r1) / (r2 - 1.0))
	l2 := lmu + math.Log((r2-1.0)*(r2-1.0)/r2)

	return (r1 - r2*(1.0+r1+r2)*l2) * l1 / (r2 * (r1 - r2))
}

func t1Tw3PThetaRhom1(r1, r2, lmu float64) float64 {
	logr2 := math.Log(r2)
	l1 := math.Log((1.0 - r1) / (r2 - r1))
	dl1 := math.Pi*math.Pi/6.0 + specfun.Dilog(1.0/r2) + logr2*(logr2-math.Log(r2-1.0))
	dl2 := -specfun.Dilog(r1/r2) + specfun.Dilog(r1) - 2.0*specfun.Dilog((r2-1.0)/(r1-1.0)) -
		logr2*logr2/2.0 + logr2*math.Log(r2-r1) - 2.0*math.Log((r2-r1)/(1.0-r1))*math.Log(r2-1.0)

	return (dl1*(1.0+r1+r2) + dl2*(4.0*r1-1.0) +
		((r1+r2)*(r2-1.0)+(r1*(2.0-3.0*r2)+r2)*logr2)/(2.0*r2) +
		l1*(1.0-2.0*r1+lmu*(4.0*r1-1.0))) / (r2 - r1)
}

func t1Tw3PDeltaRhom1(r1, r2, lmu float64) float64 {
	l1mr1 := math.Log(1.0 - r1)
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	dlr1 := specfun.Dilog(r1)
	dl1mr2 := specfun.Dilog(1.0 - r2)

	return (6.0 - 2.0*r1 - math.Pi*math.Pi/6.0*(1.0+4.0*r1) +
		lr2*(l1mr1*r1-lr2m1*2.0*r1) +
		lr2m1*(lr2m1*(1.0+2.0*r1)-4.0+2.0*r1*(r2-1.0)/r2-l1mr1*2.0*r1+lmu*(1.0+r1)) +
		lmu*3.0/2.0*(r1-3.0) +
		l1mr1*(-l1mr1+2.0+r1+r1/r2-(1.0+r1)*lmu) -
		dlr1 + (1.0-2.0*r1)*dl1mr2) / (r2 - r1)
}

func t1Tw3SigmaTheta1mRho(r1, r2, lmu float64) float64 {
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	lr2mr1 := math.Log(r2 - r1)

	return (-6.0*(r1*r1+2.0*(r2-1.0)*r2+r1*(-1.0+2.0*r2-2.0*r2*r2))/(r2*(r1-r2)*(r1-r2)) +
		lr2mr1*((lmu-lr2+2.0*lr2m1)*6.0*(1.0+r1+r2)/(r1-r2)-6.0*r1/(r2*(r1-r2))) +
		lr2m1*((-2.0*lr2m1-lmu+lr2)*6.0*(1.0+r1+r2)/(r1-r2)+
			6.0*(-2.0*(r2-1.0)*r2+r1*r2*(2.0*r2-5.0)+r1*r1*(1.0+2.0*r2))/((r2-r1)*(r2-r1)*r2)) +
		(lmu-lr2)*6.0*(r1-1.0)*(-1.0+r1+r2)/((r2-r1)*(r2-r1))) / (r2 - r1)
}

func t1Tw3SigmaThetaRhom1(r1, r2, lmu float64) float64 {
	pi2 := math.Pi * math.Pi

	l1mr1 := math.Log(1.0 - r1)
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	lr2mr1 := math.Log(r2 - r1)
	l1 := 2.0*lr2m1 + lmu - lr2
	dl1 := specfun.Dilog(r1) - specfun.Dilog(r1/r2) - 2.0*specfun.Dilog((r2-1.0)/(r1-1.0))
	dl2 := specfun.Dilog(1.0/r2) - l1*l1

	return 3.0 * (-dl1*2.0*(4.0*r1-1.0)*(r1-r2)*r2 -
		dl2*2.0*(r1-r2)*r2*(1.0+r1+r2) +
		l1*(-l1*(r1-r2)*r2*(5.0+4.0*r2)+
			lr2mr1*2.0*(4.0*r1-1.0)*(r1-r2)*r2-
			lr2m1*2.0*(-5.0+5.0*r1-3.0*r2)*(r1-r2)*r2-
			lmu*2.0*(-3.0+2.0*r1-2.0*r2)*(r1-r2)*r2+
			r1*(r2-1.0)*r2-5.0*r2*r2+r1*r1*(2.0+r2-2.0*r2*r2)) +
		lr2mr1*(-2.0*(-1.0+2.0*r1)*(r1-r2)*r2) +
		lr2m1*(lr2m1*4.0*(r1-r2)*(-2.0+3.0*r1-r2)*r2-
			l1mr1*4.0*(4.0*r1-1.0)*(r1-r2)*r2+
			lmu*2.0*(-5.0+5.0*r1-3.0*r2)*(r1-r2)*r2-
			2.0*r1*(-1.0+r2)*r2+2.0*r2*(2.0+3.0*r2)+r1*r1*(-4.0-2.0*r2+4.0*r2*r2)) +
		l1mr1*(-lmu*2.0*(4.0*r1-1.0)*(r1-r2)*r2+
			2.0*(-1.0+2.0*r1)*(r1-r2)*r2) +
		lmu*(lmu*(-3.0+2.0*r1-2.0*r2)*(r1-r2)*r2-
			r1*(r2-1.0)*r2+r2*(2.0+3.0*r2)+r1*r1*(-2.0+r2*(-1.0+2.0*r2))) +
		(r2*r2*(pi2-3.0+(3.0+pi2)*r2)+
			r1*(6.0-(6.0+pi2)*r2)-
			r1*r1*(3.0+r2*(pi2-9.0+6.0*r2)))/3.0) / (pow3(r1-r2) * r2)
}

func t1Tw3SigmaDeltaRhom1(r1, r2, lmu float64) float64 {
	pi2 := math.Pi * math.Pi

	l1mr1 := math.Log(1.0 - r1)
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	l1 := 2.0*lr2m1 + lmu - lr2
	l2 := l1mr1 - 2.0*lr2m1
	dl1 := specfun.Dilog(r1) + l1mr1*(l1mr1+lmu)
	dl2 := specfun.Dilog(1.0-r2) + lr2m1*lr2m1

	return (dl1*6.0*(r1*(3.0-4.0*r2)+r2) +
		dl2*(-30.0*r2+6.0*r1*(-7.0+2.0*r1+10.0*r2)) +
		l1*l2*(-12.0*r2+6.0*r1*(-2.0+r1+3.0*r2)) +
		lr2m1*(lmu*(-18.0*r2+6.0*r1*(-5.0+r1+7.0*r2))-
			12.0*(r2+r1*(2.0-r1-3.0*r2+r2*r2))/r2) -
		l1mr1*6.0*((-2.0+r1)*r1-2.0*r2+r1*(5.0+r1)*r2+(2.0-5.0*r1)*r2*r2)/r2 +
		lmu*(-3.0*r1*(-17.0+r1-5.0*r2)+9.0*r2) +
		r1*(-72.0+pi2*(-5.0+4.0*r1)) + r2*(6.0*(-1.0+r1)*r1+pi2*(-7.0+8.0*r1)) -
		6.0*(1.0+3.0*r2)) / pow3(r1-r2)
}

func (ff *FormFactor) fNloTw3(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	const eps = 1e-12

	mupi := ff.pion.MuPi(k.mu)
	r1 := q2 / k.mc2
	lmu := 2.0 * math.Log(k.mc/k.mu)

	integrand := func(r2 float64) float64 {
		weight := (1.0 - selectWeight) + selectWeight*k.mc2*r2

		return (2.0/(r2-r1)*(t1Tw3PThetaRhom1(r1, r2, lmu)+t1Tw3PTheta1mRho(r1, r2, lmu)+t1Tw3PDeltaRhom1(r1, r2, lmu)) +
			1.0/3.0*(t1Tw3SigmaThetaRhom1(r1, r2, lmu)+t1Tw3SigmaTheta1mRho(r1, r2, lmu)+t1Tw3SigmaDeltaRhom1(r1, r2, lmu))) *
			weight * math.Exp(-k.mc2*r2/m2)
	}

	integral, err := ff.integrator.Integrate(integrand, 1.0+eps, ff.s0D(q2)/k.mc2)
	if err != nil {
		return 0, fmt.Errorf("twist-3 next-to-leading order: %w", err)
	}

	// surface term from the delta distribution at rho = 1
	weight := (1.0 - selectWeight) + selectWeight*k.mc2

	return k.fpi * mupi * k.mc * (integral -
		(2.0/(1.0-r1)*(4.0-3.0*lmu)+
			2.0*(1.0+r1)/pow2(1.0-r1)*(4.0-3.0*lmu))*weight*math.Exp(-k.mc2/m2)), nil
}
