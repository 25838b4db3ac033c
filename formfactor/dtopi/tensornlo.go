package dtopi

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hep/internal/specfun"
)

// sqrtMachineEps guards the log(1-r1)/r1 structures of the tensor
// kernels; below it they are replaced by their Taylor expansions.
const sqrtMachineEps = 1.4901161193847656e-08

// l1mr1Series is the expansion of log(1 - r1) / r1 around r1 = 0.
func l1mr1Series(r1 float64) float64 {
	r12 := r1 * r1

	return -1.0 - r1/2.0 - r12/3.0 - r12*r1/4.0
}

func t1TTw2Theta1mRho(r1, r2, a2, a4, lmu float64) float64 {
	r12 := r1 * r1
	r13 := r12 * r1
	r14 := r12 * r12
	r15 := r14 * r1
	r22 := r2 * r2
	r23 := r22 * r2
	r24 := r22 * r22
	r25 := r24 * r2
	l := lmu + math.Log(pow2(r2-1.0)/r2)

	ca0 := pow4(r1-r2) * (-r1*2.0 + r2*(1.0+r1))
	ca2 := pow2(r1-r2) * (-2.0*(r1*55.0-r12*65.0+16.0*r13) +
		r2*(95.0-r1*15.0-r12*45.0+r13) +
		r22*2.0*(-35.0+r1*13.0+r12*4.0) +
		r23*6.0*(1.0+r1))
	ca4 := (-2877.0*r1 + 6258.0*r12 - r13*4592.0 + r14*1288.0 - r15*107.0) +
		r2*(2667.0-r1*462.0-r12*5502.0+r13*4228.0-r14*782.0+r15) +
		r22*6.0*(-791.0+r1*889.0-r12*21.0-r13*131.0+r14*4.0) +
		r23*10.0*(266.0-r1*280.0+r12*35.0+r13*9.0) +
		r24*10.0*(-49.0+r1*26.0+r12*8.0) +
		r25*15.0*(1.0+r1)

	cb0 := pow4(r1-r2) * (-1.0 - r1 + 2.0*r2)
	cb2 := pow2(r1-r2) * (-15.0 - r1*85.0 + r12*119.0 - r13*31.0 +
		r2*2.0*(65.0-r1*34.0-r12*13.0) +
		r22*12.0*(-8.0+r1*5.0) +
		r23*12.0)
	cb4 := (-210.0 - r1*2331.0 + r12*5754.0 - r13*4396.0 + r14*1259.0 - r15*106.0) +
		r2*3.0*(1127.0-r1*728.0-r12*1358.0+r13*1252.0-r14*243.0) +
		r22*30.0*(-189.0+r1*245.0-r12*52.0-r13*14.0) +
		r23*20.0*(161.0-r1*193.0+47.0*r12) +
		r24*15.0*(-43.0+33.0*r1) +
		r25*30.0

	return -(ca0 + ca2*a2 + ca4*a4 - l*r2*(cb0+cb2*a2+cb4*a4)) *
		(r1 - 1.0) * (r2 - 1.0) * 3.0 / (pow8(r1-r2) * r2)
}

func t1TTw2ThetaRhom1(r1, r2, a2, a4, lmu float64) float64 {
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
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)

	c0 := r2 - 1.0
	clr2 := 60.0 * r2
	cl := 60.0 * (r1 - 1.0) * (r2 - 1.0) * r2

	ca00 := -60.0 * (r1*2.0 +
		r2*(-1.0-r1*12.0+r12*4.0) +
		r22*2.0*(5.0-r1) +
		r23*(-1.0))
	ca0mu := -1.0 + 2.0*r1 - r2
	ca0r2 := 1.0 + r12 + r2*(-3.0-r1*2.0-r12*3.0) + r22*(4.0+r1*2.0)
	ca0r2m1 := 2.0 * ca0mu

	ca20 := -5.0 * (24.0*(r1*55.0-r12*90.0+r13*36.0) +
		r2*(-1140.0-r1*7475.0+r12*13780.0-r13*5544.0+r14*288.0) +
		r22*(8915.0-r1*3467.0-r12*8672.0+r13*2520.0) +
		r23*(-10097.0+r1*10501.0-r12*836.0) +
		r24*5.0*(-351.0*r1+599.0) +
		r25*(-37.0))
	ca2mu := -15.0 + r1*130.0 - r12*96.0 + r13*12.0 +
		r2*(-85.0-r1*68.0+r12*60.0) +
		r22*(119.0-r1*26.0) +
		r23*(-31.0)
	ca2r2 := 15.0 + r1*70.0 - r12*144.0 + r13*60.0 + r14*6.0 +
		r2*(-145.0+r1*128.0+r12*12.0-r13*24.0-r14*18.0) +
		r22*(166.0-r1*204.0+r12*54.0-r13*72.0) +
		r23*(-18.0+r1*40.0+r12*38.0) +
		r24*(-1.0+r1*37.0)
	ca2r2m1 := 2.0 * ca2mu

	ca40 := 2.0 * (-30.0*(r1*2877.0-r12*7875.0+r13*7700.0-r14*3150.0+r15*450.0) +
		r2*(80010.0+r1*544677.0-r12*1770111.0-25.0*(-r13*69041.0+2.0*(r14*13331.0-r15*1746.0+r16*36.0))) +
		r22*(-743127.0+r1*499947.0+r12*1581699.0-25.0*(r13*78527.0-r14*27488.0+r15*1944.0)) +
		r23*(1406664.0-r1*2265963.0+r12*539679.0+25.0*(r13*19705.0-r14*4702.0)) +
		r24*(-1010261.0+r1*1718047.0-r12*769551.0+r13*40025.0) +
		r25*(290999.0+2.0*(-r1*215674.0+51507.0*r12)) +
		r26*2.0*(-14213.0+9245.0*r1) +
		r27*121.0)
	ca4mu := -210.0 + r1*3381.0 - r12*5670.0 + r13*3220.0 - r14*645.0 + r15*30.0 +
		r2*(-2331.0-r1*2184.0+r12*7350.0-r13*3860.0+r14*495.0) +
		r22*(5754.0-r1*4074.0-r12*1560.0+r13*940.0) +
		r23*(-4396.0+r1*3756.0-r12*420.0) +
		r24*(1259.0-r1*729.0) +
		r25*(-106.0)
	ca4r2 := 210.0 + r1*2121.0 - r12*6825.0 + r13*7000.0 - r14*2925.0 + r15*420.0 + r16*15.0 +
		r2*(-3591.0+r1*3444.0+r12*5565.0-r13*7900.0+r14*2475.0-r15*90.0-r16*45.0) +
		r22*(7791.0-r1*14175.0+r12*7020.0-r13*1500.0+r14*270.0-r15*630.0) +
		r23*(-5740.0+r1*10020.0-r12*5520.0+r13*1480.0-r14*1090.0) +
		r24*(1135.0-r1*555.0+r12*180.0+r13*570.0) +
		r25*(270.0-r1*354.0+r12*864.0) +
		r26*(-31.0+121.0*r1)
	ca4r2m1 := 2.0 * ca4mu

	return -1.0 / (20.0 * r2 * pow8(r1-r2)) * (pow4(r1-r2)*(c0*ca00+cl*ca0mu*lmu+clr2*ca0r2*lr2+cl*ca0r2m1*lr2m1) +
		pow2(r1-r2)*(c0*ca20+cl*ca2mu*lmu+clr2*ca2r2*lr2+cl*ca2r2m1*lr2m1)*a2 +
		(c0*ca40+cl*ca4mu*lmu+clr2*ca4r2*lr2+cl*ca4r2m1*lr2m1)*a4)
}

func t1TTw2Delta(r1, r2, a2, a4, lmu float64) float64 {
	pi2 := math.Pi * math.Pi

	r12 := r1 * r1
	r13 := r12 * r1
	r14 := r12 * r12
	r15 := r13 * r12
	r16 := r13 * r13
	r22 := r2 * r2
	r23 := r22 * r2
	r24 := r22 * r22
	r25 := r23 * r22
	r26 := r23 * r23
	l1mr1 := math.Log(1.0 - r1)
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	dilogr1 := specfun.Dilog(r1)
	dilog1mr2 := specfun.Dilog(1.0 - r2)

	ca00 := r2 * (-14.0 + 6.0*r1 + (6.0+2.0*r1)*r2 + pi2*(-1.0+r1+(1.0-r1)*r2))
	ca0mu := r2 * (11.0 - 5.0*r1 + (-5.0-r1)*r2)
	ca01mr1 := 2.0 * (r1 - r12 + (1.0-4.0*r1+3.0*r12)*r2 + (-1.0+3.0*r1-2.0*r12)*r22)
	ca0r2m1 := 4.0 * (-1.0 + r1 + (2.0-2.0*r1)*r2 + (-1.0+1.0*r1)*r22)
	ca0log2 := 2.0 * r2 * (1.0 - r1 + (-1.0+r1)*r2)
	ca0dlr1 := 2.0 * r2 * (1.0 - r1 + (-1.0+r1)*r2)
	ca0dl1mr2 := 2.0 * r2 * (-3.0 + 3.0*r1 + (3.0-3.0*r1)*r2)

	ca20 := r2*(10.0*(pi2+30.0)-20.0*(pi2+22.0)*r1+12.0*(pi2+14.0)*r12-2.0*(pi2+6.0)*r13) +
		r22*(-20.0*(pi2+22.0)+36.0*(pi2+14.0)*r1-18.0*(pi2+6.0)*r12+2.0*(pi2-2.0)*r13) +
		r23*(12.0*(pi2+14.0)-18.0*(pi2+6.0)*r1+6.0*(pi2-2.0)*r12) +
		r24*(-2.0*(pi2+6.0)+2.0*(pi2-2.0)*r1)
	ca2mu := r2*(-230.0+340.0*r1-132.0*r12+10.0*r13) +
		r22*(340.0-396.0*r1+90.0*r12+2.0*r13) +
		r23*(-132.0+90.0*r1+6.0*r12) +
		r24*(10.0+2.0*r1)
	ca2l2 := r2*(-10.0+20.0*r1-12.0*r12+2.0*r13) +
		r22*(20.0-36.0*r1+18.0*r12-2.0*r13) +
		r23*(-12.0+18.0*r1-6.0*r12) +
		r24*(2.0-2.0*r1)
	ca2r2m1 := 40.0 - 80.0*r1 + 48.0*r12 - 8.0*r13 +
		r2*(-120.0+224.0*r1-120.0*r12+16.0*r13) +
		r22*(128.0-216.0*r1+96.0*r12-8.0*r13) +
		r23*(-56.0+80.0*r1-24.0*r12) +
		r24*(8.0-8.0*r1)
	ca21mr1 := -20.0*r1 + 40.0*r12 - 24.0*r13 + 4.0*r14 +
		r2*(-20.0+120.0*r1-176.0*r12+88.0*r13-12.0*r14) +
		r22*(40.0-176.0*r1+216.0*r12-88.0*r13+8.0*r14) +
		r23*(-24.0+88.0*r1-88.0*r12+24.0*r13) +
		r24*(4.0-12.0*r1+8.0*r12)

	ca40 := r2*(42.0*(46.0+pi2)-126.0*(38.0+pi2)*r1+140.0*(30.0+pi2)*r12-70.0*(22.0+pi2)*r13+15.0*(14.0+pi2)*r14-(6.0+pi2)*r15) +
		r22*(-126.0*(38.0+pi2)+350.0*(30.0+pi2)*r1-350.0*(22.0+pi2)*r12+150.0*(14.0+pi2)*r13-25.0*(6.0+pi2)*r14+(-2.0+pi2)*r15) +
		r23*(140.0*(30.0+pi2)-350.0*(22.0+pi2)*r1+300.0*(14.0+pi2)*r12-100.0*(6.0+pi2)*r13+10.0*(-2.0+pi2)*r14) +
		r24*(-70.0*(22.0+pi2)+150.0*(14.0+pi2)*r1-100.0*(6.0+pi2)*r12+20.0*(-2.0+pi2)*r13) +
		r25*(15.0*(14.0+pi2)-25.0*(6.0+pi2)*r1+10.0*(-2.0+pi2)*r12) +
		r26*(-6.0-pi2+(-2.0+pi2)*r1)
	ca4mu := r2*(-1470.0+3654.0*r1-3220.0*r12+1190.0*r13-165.0*r14+5.0*r15) +
		r22*(3654.0-8050.0*r1+5950.0*r12-1650.0*r13+125.0*r14+r15) +
		r23*(-3220.0+5950.0*r1-3300.0*r12+500.0*r13+10.0*r14) +
		r24*(1190.0-1650.0*r1+500.0*r12+20.0*r13) +
		r25*(-165.0+125.0*r1+10.0*r12) +
		r26*(5.0+r1)
	ca4l2 := r2*(-42.0+126.0*r1-140.0*r12+70.0*r13-15.0*r14+r15) +
		r22*(126.0-350.0*r1+350.0*r12-150.0*r13+25.0*r14-r15) +
		r23*(-140.0+350.0*r1-300.0*r12+100.0*r13-10.0*r14) +
		r24*(70.0-150.0*r1+100.0*r12-20.0*r13) +
		r25*(-15.0+25.0*r1-10.0*r12) +
		r26*(1.0-r1)
	ca4r2m1 := 168.0 - 504.0*r1 + 560.0*r12 - 280.0*r13 + 60.0*r14 - 4.0*r15 +
		r2*(-672.0+1904.0*r1-1960.0*r12+880.0*r13-160.0*r14+8.0*r15) +
		r22*(1064.0-2800.0*r1+2600.0*r12-1000.0*r13+140.0*r14-4.0*r15) +
		r23*(-840.0+2000.0*r1-1600.0*r12+480.0*r13-40.0*r14) +
		r24*(340.0-700.0*r1+440.0*r12-80.0*r13) +
		r25*(-64.0+104.0*r1-40.0*r12) +
		r26*(4.0-4.0*r1)
	ca41mr1 := -84.0*r1 + 252.0*r12 - 280.0*r13 + 140.0*r14 - 30.0*r15 + 2.0*r16 +
		r2*(-84.0+672.0*r1-1484.0*r12+1400.0*r13-610.0*r14+112.0*r15-6.0*r16) +
		r22*(252.0-1484.0*r1+2800.0*r12-2300.0*r13+850.0*r14-122.0*r15+4.0*r16) +
		r23*(-280.0+1400.0*r1-2300.0*r12+1600.0*r13-460.0*r14+40.0*r15) +
		r24*(140.0-610.0*r1+850.0*r12-460.0*r13+80.0*r14) +
		r25*(-30.0+112.0*r1-122.0*r12+40.0*r13) +
		r26*(2.0-6.0*r1+4.0*r12)

	if math.Abs(r1) < sqrtMachineEps {
		ser := l1mr1Series(r1)

		return -3.0 / (r2 * pow7(r1-r2)) * (pow4(r1-r2)*(ca00+ca0mu*lmu+ca01mr1*ser+ca0r2m1*lr2m1+
			ca0log2*(ser*(ser*r1+lr2-2.0*lr2m1)*r1+lr2m1*(lr2m1-2.0*lr2))+ca0dlr1*dilogr1+ca0dl1mr2*dilog1mr2) -
			3.0*pow2(r1-r2)*(ca20+ca2mu*lmu+ca21mr1*ser+ca2r2m1*lr2m1+
				ca2l2*(2.0*pow2(ser*r1-lr2m1)-4.0*lr2m1*lr2+2.0*ser*lr2*r1+2.0*dilogr1-6.0*dilog1mr2))*a2 -
			15.0*(ca40+ca4mu*lmu+ca4r2m1*lr2m1+ca41mr1*ser+
				ca4l2*(2.0*pow2(ser*r1-lr2m1)-4.0*lr2m1*lr2+2.0*ser*lr2*r1+2.0*dilogr1-6.0*dilog1mr2))*a4)
	}

	return -3.0 / (r2 * pow7(r1-r2)) * (pow4(r1-r2)*(ca00+ca0mu*lmu+ca01mr1*l1mr1/r1+ca0r2m1*lr2m1+
		ca0log2*(l1mr1*(l1mr1+lr2-2.0*lr2m1)+lr2m1*(lr2m1-2.0*lr2))+ca0dlr1*dilogr1+ca0dl1mr2*dilog1mr2) -
		3.0*pow2(r1-r2)*(ca20+ca2mu*lmu+ca21mr1*l1mr1/r1+ca2r2m1*lr2m1+
			ca2l2*(2.0*pow2(l1mr1-lr2m1)-4.0*lr2m1*lr2+2.0*l1mr1*lr2+2.0*dilogr1-6.0*dilog1mr2))*a2 -
		15.0*(ca40+ca4mu*lmu+ca4r2m1*lr2m1+ca41mr1*l1mr1/r1+
			ca4l2*(2.0*pow2(l1mr1-lr2m1)-4.0*lr2m1*lr2+2.0*l1mr1*lr2+2.0*dilogr1-6.0*dilog1mr2))*a4)
}

func (ff *FormFactor) fTNloTw2(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	const eps = 1e-12

	a2 := ff.pion.A2(k.mu)
	a4 := ff.pion.A4(k.mu)
	r1 := q2 / k.mc2
	lmu := math.Log(k.mc2 / (k.mu * k.mu))

	integrand := func(r2 float64) float64 {
		weight := (1.0 - selectWeight) + selectWeight*k.mc2*r2

		return 2.0 * (t1TTw2ThetaRhom1(r1, r2, a2, a4, lmu) +
			t1TTw2Theta1mRho(r1, r2, a2, a4, lmu) +
			t1TTw2Delta(r1, r2, a2, a4, lmu)) * weight * math.Exp(-k.mc2*r2/m2)
	}

	integral, err := ff.integrator.Integrate(integrand, 1.0+eps, ff.s0TD(q2)/k.mc2)
	if err != nil {
		return 0, fmt.Errorf("tensor twist-2 next-to-leading order: %w", err)
	}

	return k.mc * k.fpi * integral, nil
}

func t1TTw3PTheta1mRho(r1, r2, lmu float64) float64 {
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	l := math.Log((r2 - r1) / (r2 - 1.0))

	return l * (-1.0 + 6.0*lr2m1 - 3.0*lr2 + 3.0*lmu)
}

func t1TTw3PThetaRhom1(r1, r2, lmu float64) float64 {
	pi2 := math.Pi * math.Pi

	r12 := r1 * r1
	r13 := r12 * r1
	r14 := r13 * r1
	r22 := r2 * r2
	r23 := r22 * r2
	r24 := r23 * r2
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	l1mr1 := math.Log(1.0 - r1)
	lr2mr1 := math.Log(r2 - r1)
	l := math.Log((r1 - r2) / (r1 - 1.0))

	if math.Abs(r1) < sqrtMachineEps {
		dlSer := -6.0*specfun.Dilog(1.0-r2) + 3.0*specfun.Dilog(1.0/r2) - pi2 + 3.0*lr2*(3.0*lr2/2.0-lr2m1) +
			3.0*r1*(r2+(2.0*r2-1.0)*lr2-1.0)/r2 +
			3.0*r12*((4.0*r22-2.0)*lr2+(r2-1.0)*(5.0*r2+1.0))/(4.0*r22) +
			r13*((6.0*r23-3.0)*lr2+(r2-1.0)*(2.0*r2*(5.0*r2+2.0)+1.0))/(3.0*r23) +
			r14*(12.0*(2.0*r24-1.0)*lr2+(r2-1.0)*(r2*(r2*(47.0*r2+23.0)+11.0)+3.0))/(16.0*r24)

		return 3.0*pi2/2.0 - 2.0*lr2 + 3.0*lmu*(l1mr1-lr2mr1) + l*(1.0-6.0*lr2m1) + dlSer
	}

	lr1 := math.Log(math.Abs(r1))
	dl := -3.0 * (specfun.Dilog(1.0/r1) + specfun.Dilog(r2) - specfun.Dilog(r2/r1) +
		2.0*specfun.Dilog((r2-1.0)/(r1-1.0)) + lr2*(lr1+lr2m1-lr2mr1-lr2/2.0))

	return 3.0*pi2/2.0 - 2.0*lr2 + 3.0*lmu*(l1mr1-lr2mr1) + l*(1.0-6.0*lr2m1) + dl
}

func t1TTw3PDeltaRhom1(r1, r2, lmu float64) float64 {
	pi2 := math.Pi * math.Pi

	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	l1mr1 := math.Log(1.0 - r1)
	l := math.Log((r2 - 1.0) / (1.0 - r1))
	dl := -specfun.Dilog(r1) - specfun.Dilog(1.0-r2)

	if math.Abs(r1) < sqrtMachineEps {
		ser := l1mr1Series(r1)
		r12 := r1 * r1

		return -5.0*pi2/6.0 + (-1.0+(4.0+1.0/r2)*r1-ser*r12)*ser +
			(-2.0-2.0/r2-2.0*ser*r1+3.0*lr2m1)*lr2m1 +
			(ser*r1-2.0*lr2m1)*lr2 + 2.0*l*lmu + dl
	}

	return -5.0*pi2/6.0 + (4.0-1.0/r1+1.0/r2-l1mr1)*l1mr1 +
		(-2.0-2.0/r2-2.0*l1mr1+3.0*lr2m1)*lr2m1 +
		(l1mr1-2.0*lr2m1)*lr2 + 2.0*l*lmu + dl
}

func t1TTw3SigmaTheta1mRho(r1, r2, lmu float64) float64 {
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	lr2mr1 := math.Log(r2 - r1)

	return 3.0 * ((r1-1.0)*(-4.0+r2*(3.0-lr2+lmu+2.0*lr2m1)) +
		(r1-r2)*r2*(lr2m1*(1.0+3.0*lr2-6.0*lr2m1+6.0*lr2mr1-3.0*lmu)+
			lr2mr1*(-1.0-3.0*lr2+3.0*lmu)))
}

func t1TTw3SigmaThetaRhom1(r1, r2, lmu float64) float64 {
	pi2 := math.Pi * math.Pi

	r12 := r1 * r1
	r13 := r12 * r1
	r14 := r13 * r1
	r22 := r2 * r2
	r23 := r22 * r2
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	l1mr1 := math.Log(1.0 - r1)
	lr2mr1 := math.Log(r2 - r1)

	common := 4.0 - 9.0*r2 + 5.0*r22 -
		lr2*r2*(-3.0+2.0*r2-r1*(2.0*r2-3.0)) - 2.0*lr2m1*r2*(r2-1.0) - lmu*r2*(r2-1.0) -
		r2*(r1-r2)*(6.0*lr2*(lr2mr1-lr2m1+lr2/2.0)+12.0*lr2m1*(l1mr1-lr2mr1)+
			2.0*lr2mr1*(1.0-3.0*lmu)+2.0*l1mr1*(-1.0+3.0*lmu)+3.0*pi2)/2.0

	if math.Abs(r1) < sqrtMachineEps {
		dlSer := -r22*(6.0*specfun.Dilog(1.0-r2)-3.0*specfun.Dilog(1.0/r2)+pi2) +
			r1*r2*(6.0*specfun.Dilog(1.0-r2)-3.0*specfun.Dilog(1.0/r2)+3.0*r2+6.0*r2*lr2+pi2-3.0) +
			r12*3.0*(3.0-8.0*r2+5.0*r2+4.0*(r2-2.0)*r2*lr2)/4.0 +
			r13*(5.0/(4.0*r2)+6.0-69.0*r2/4.0+10.0*r22+3.0*(2.0*r2-3.0)*r2*lr2)/3.0 +
			r14*((r2-1.0)*(r2*(r2*(141.0*r2-91.0)-31.0)-7.0)+24.0*(3.0*r2-4.0)*r23*lr2)/(48.0*r22)

		return -3.0 * (common + dlSer)
	}

	lr1 := math.Log(math.Abs(r1))
	dl := r2 * (r1 - r2) * 3.0 * (specfun.Dilog(1.0/r1) + specfun.Dilog(r2) - specfun.Dilog(r2/r1) +
		2.0*specfun.Dilog((r2-1.0)/(r1-1.0)) + lr2*lr1)

	return -3.0 * (common + dl)
}

func t1TTw3SigmaDeltaRhom1(r1, r2, lmu float64) float64 {
	pi2 := math.Pi * math.Pi

	r12 := r1 * r1
	r22 := r2 * r2
	l1mr1 := math.Log(1.0 - r1)
	lr2 := math.Log(r2)
	lr2m1 := math.Log(r2 - 1.0)
	l := math.Log((r2 - 1.0) / (1.0 - r1))

	l0 := r2 * (26.0 - 5.0*r1 - 5.0*r2 - (-12.0+11.0*r1+r2)*pi2/6.0)
	l1poly := -(4.0*r1 - 3.0*r12 + (-6.0*r1+2.0*r12)*r2 + (1.0+2.0*r1)*r22)
	var l1 float64
	if math.Abs(r1) < sqrtMachineEps {
		l1 = l1poly * l1mr1Series(r1)
	} else {
		l1 = l1poly * l1mr1 / r1
	}
	l2 := 2.0 * (4.0 - 3.0*r1 + (-3.0+r1)*r2 + r22) * lr2m1
	l3 := r2 * (-14.0 + r1 + r2) * lmu
	dl1 := r2 * ((-4.0+r1+3.0*r2)*l1mr1*l1mr1 + (-4.0+5.0*r1-r2)*lr2m1*lr2m1 + (-4.0+3.0*r1+r2)*l1mr1*lr2 -
		2.0*(-4.0+3.0*r1+r2)*(l1mr1+lr2)*lr2m1 + 2.0*(r1-r2)*l*lmu)
	dl2 := r2 * ((-4.0+r1+3.0*r2)*specfun.Dilog(r1) + (12.0-7.0*r1-5.0*r2)*specfun.Dilog(1.0-r2))

	return 3.0 * (l0 + l1 + l2 + l3 + dl1 + dl2)
}

func (ff *FormFactor) fTNloTw3(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	const eps = 1e-12

	mupi := ff.pion.MuPi(k.mu)
	r1 := q2 / k.mc2
	lmu := 2.0 * math.Log(k.mc/k.mu)

	integrand := func(r2 float64) float64 {
		weight := (1.0 - selectWeight) + selectWeight*k.mc2*r2

		return (2.0/pow2(r2-r1)*(t1TTw3PThetaRhom1(r1, r2, lmu)+t1TTw3PTheta1mRho(r1, r2, lmu)+t1TTw3PDeltaRhom1(r1, r2, lmu)) +
			2.0/(3.0*r2*pow3(r2-r1))*(t1TTw3SigmaTheta1mRho(r1, r2, lmu)+t1TTw3SigmaThetaRhom1(r1, r2, lmu)+t1TTw3SigmaDeltaRhom1(r1, r2, lmu))) *
			weight * math.Exp(-k.mc2*r2/m2)
	}

	integral, err := ff.integrator.Integrate(integrand, 1.0+eps, ff.s0TD(q2)/k.mc2)
	if err != nil {
		return 0, fmt.Errorf("tensor twist-3 next-to-leading order: %w", err)
	}

	// surface term from the delta distribution at rho = 1
	weight := (1.0 - selectWeight) + selectWeight*k.mc2

	return k.fpi * mupi * (integral -
		4.0*(4.0-3.0*lmu)*weight*math.Exp(-k.mc2/m2)/pow2(1.0-q2/k.mc2)), nil
}
